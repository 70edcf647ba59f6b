package skinresolver

import (
	"fmt"
	"image"
	"strings"
)

// Atlas pixels are magnified by texelScale before the inner and outer layers
// are composited. The outer layer keeps overlayMargin pixels on every side.
const (
	texelScale    = 8
	overlayMargin = 4
)

// Flat (single-layer) output sizes.
var (
	flatHeadSize = image.Pt(60, 60)
	flatBodySize = image.Pt(60, 90)
	flatLimbSize = image.Pt(30, 90)
)

// ModelVariant selects the arm width of the player model.
type ModelVariant int

const (
	Classic ModelVariant = iota // 4px arms
	Slim                        // 3px arms
)

func (v ModelVariant) String() string {
	if v == Slim {
		return "slim"
	}
	return "classic"
}

func (v ModelVariant) armWidth() int {
	if v == Slim {
		return 3
	}
	return 4
}

// BodyPart identifies one of the six front-facing sub-images of the atlas.
type BodyPart int

const (
	Head BodyPart = iota
	Body
	LeftArm
	RightArm
	LeftLeg
	RightLeg
)

var bodyPartNames = [...]string{
	Head:     "head",
	Body:     "body",
	LeftArm:  "left-arm",
	RightArm: "right-arm",
	LeftLeg:  "left-leg",
	RightLeg: "right-leg",
}

func (p BodyPart) String() string {
	if p < 0 || int(p) >= len(bodyPartNames) {
		return fmt.Sprintf("BodyPart(%d)", int(p))
	}
	return bodyPartNames[p]
}

// ParseBodyPart is the inverse of BodyPart.String. It also accepts
// underscores and is case-insensitive.
func ParseBodyPart(s string) (BodyPart, error) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, name := range bodyPartNames {
		if name == s {
			return BodyPart(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownBodyPart)
}

// BodyParts returns every body part in table order.
func BodyParts() []BodyPart {
	return []BodyPart{Head, Body, LeftArm, RightArm, LeftLeg, RightLeg}
}

// Valid reports whether p is one of the six table entries.
func (p BodyPart) Valid() bool {
	return p >= 0 && int(p) < len(crops)
}

func (p BodyPart) isArm() bool {
	return p == LeftArm || p == RightArm
}

// Layer selects the base skin (Inner) or the overlay (Outer).
type Layer int

const (
	Inner Layer = iota
	Outer
)

func (l Layer) String() string {
	if l == Outer {
		return "outer"
	}
	return "inner"
}

// Rect is a rectangle in atlas pixel coordinates.
type Rect struct {
	X, Y, W, H int
}

// Bounds converts r to an image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// Region is a crop rectangle in the atlas together with the size the crop
// is resized to before compositing, excluding the caller's scale factor.
type Region struct {
	Crop Rect
	Size image.Point
}

// crops holds {inner, outer} for the classic model. Arm widths are narrowed
// for the slim model in Lookup.
var crops = [...][2]Rect{
	Head:     {{8, 8, 8, 8}, {40, 8, 8, 8}},
	Body:     {{20, 20, 8, 12}, {20, 36, 8, 12}},
	LeftArm:  {{36, 52, 4, 12}, {52, 52, 4, 12}},
	RightArm: {{44, 20, 4, 12}, {44, 36, 4, 12}},
	LeftLeg:  {{20, 52, 4, 12}, {4, 52, 4, 12}},
	RightLeg: {{4, 20, 4, 12}, {4, 36, 4, 12}},
}

// Lookup returns the atlas region and unscaled target size of one layer of
// a body part. The outer size is always the inner size plus 2*overlayMargin
// on each axis. part must be Valid.
func Lookup(part BodyPart, variant ModelVariant, layer Layer) Region {
	r := crops[part][layer]
	if part.isArm() {
		r.W = variant.armWidth()
	}
	size := image.Pt(r.W*texelScale, r.H*texelScale)
	if layer == Outer {
		size = size.Add(image.Pt(2*overlayMargin, 2*overlayMargin))
	}
	return Region{Crop: r, Size: size}
}

// FlatLookup returns the single-layer crop and output size used by the flat
// rendering mode. The head's hat layer is Lookup(Head, variant, Outer).Crop.
func FlatLookup(part BodyPart, variant ModelVariant) Region {
	r := Lookup(part, variant, Inner).Crop
	switch part {
	case Head:
		return Region{Crop: r, Size: flatHeadSize}
	case Body:
		return Region{Crop: r, Size: flatBodySize}
	default:
		return Region{Crop: r, Size: flatLimbSize}
	}
}
