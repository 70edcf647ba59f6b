package skinresolver

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/gift"
)

// Interpolation selects the resampling filter used when rotating arms.
type Interpolation int

const (
	Nearest Interpolation = iota
	Linear
	Cubic
)

var interpolationNames = [...]string{
	Nearest: "nearest",
	Linear:  "linear",
	Cubic:   "cubic",
}

func (i Interpolation) String() string {
	if i < 0 || int(i) >= len(interpolationNames) {
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
	return interpolationNames[i]
}

// ParseInterpolation parses "nearest", "linear" or "cubic".
func ParseInterpolation(s string) (Interpolation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range interpolationNames {
		if name == s {
			return Interpolation(i), nil
		}
	}
	return 0, fmt.Errorf("unknown interpolation %q", s)
}

func (i Interpolation) filter() gift.Interpolation {
	switch i {
	case Linear:
		return gift.LinearInterpolation
	case Cubic:
		return gift.CubicInterpolation
	default:
		return gift.NearestNeighborInterpolation
	}
}

// Rotate returns src rotated clockwise by degrees. The result is enlarged to
// hold the whole rotated image; uncovered pixels are transparent.
func Rotate(src image.Image, degrees float64, interp Interpolation) *image.NRGBA {
	// gift rotates counter-clockwise.
	g := gift.New(gift.Rotate(float32(-degrees), color.Transparent, interp.filter()))
	b := g.Bounds(src.Bounds())
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	g.Draw(dst, src)
	return dst
}
