package skinresolver

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// BlendMode decides how DrawLayer combines a source with the destination.
type BlendMode int

const (
	// BlendReplace copies source pixels verbatim, transparency included.
	BlendReplace BlendMode = iota
	// BlendOver composites source over destination (Porter-Duff).
	BlendOver
)

func (m BlendMode) String() string {
	if m == BlendOver {
		return "over"
	}
	return "replace"
}

// OverlayIfOpaque returns a new buffer that takes each pixel from overlay
// where the overlay is fully opaque and from base everywhere else.
func OverlayIfOpaque(base, overlay image.Image) (*image.NRGBA, error) {
	bs, ovs := base.Bounds().Size(), overlay.Bounds().Size()
	if bs != ovs {
		return nil, fmt.Errorf("overlay %v onto %v: %w", ovs, bs, ErrInvalidDimension)
	}
	b, o := asNRGBA(base), asNRGBA(overlay)
	dst := image.NewNRGBA(image.Rect(0, 0, bs.X, bs.Y))
	for y := range bs.Y {
		brow := b.Pix[y*b.Stride:]
		orow := o.Pix[y*o.Stride:]
		drow := dst.Pix[y*dst.Stride:]
		for x := range bs.X {
			i := x * 4
			if orow[i+3] == 0xff {
				copy(drow[i:i+4], orow[i:i+4])
			} else {
				copy(drow[i:i+4], brow[i:i+4])
			}
		}
	}
	return dst, nil
}

// DrawAt copies every pixel of src into dst with its top-left corner at
// (x, y), overwriting whatever was there. Pixels outside dst are dropped.
func DrawAt(dst draw.Image, src image.Image, x, y int) {
	DrawLayer(dst, src, x, y, BlendReplace)
}

// DrawOverAt is DrawAt with source-over compositing.
func DrawOverAt(dst draw.Image, src image.Image, x, y int) {
	DrawLayer(dst, src, x, y, BlendOver)
}

// DrawLayer draws src into dst at (x, y) using mode.
func DrawLayer(dst draw.Image, src image.Image, x, y int, mode BlendMode) {
	sb := src.Bounds()
	at := image.Pt(x, y).Add(dst.Bounds().Min)
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	op := draw.Src
	if mode == BlendOver {
		op = draw.Over
	}
	draw.Draw(dst, r, src, sb.Min, op)
}

// ParseBlendMode parses "replace" or "over".
func ParseBlendMode(s string) (BlendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "replace", "src":
		return BlendReplace, nil
	case "over":
		return BlendOver, nil
	}
	return 0, fmt.Errorf("unknown blend mode %q", s)
}
