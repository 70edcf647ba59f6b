package skinresolver

import (
	"fmt"
	"image"
)

// overviewUnits is the side of the overview canvas before scaling.
const overviewUnits = 264

// MaxScale bounds Options.Scale. At MaxScale the overview canvas is
// 8448 pixels square.
const MaxScale = 32

type Options struct {
	// Arm width of the model. Only arms are affected.
	Variant ModelVariant
	// Integer magnification applied to every finished part.
	// The overview canvas is 264*Scale pixels square. Must be in [1, MaxScale].
	Scale int
	// Arm tilt in degrees. The left arm is rotated by -ArmAngle and the
	// right arm by +ArmAngle, so both hang away from the body.
	// 0 keeps the arms vertical.
	ArmAngle float64
	// Horizontal distance, in unscaled pixels, the arms are pulled towards
	// the body after rotation. Compensates for the rotated bounding box.
	ArmShrink int
	// Resampling filter for the arm rotation. Nearest keeps the pixel-art
	// look; Linear and Cubic soften the rotated edges.
	Interpolation Interpolation
	// How layers and parts are drawn onto each other. BlendReplace lets a
	// transparent overlay pixel erase what is underneath.
	Blend BlendMode
}

func DefaultOptions() Options {
	return Options{
		Variant:       Classic,
		Scale:         8,
		ArmAngle:      8,
		ArmShrink:     6,
		Interpolation: Nearest,
		Blend:         BlendReplace,
	}
}

// OptionsForSize returns DefaultOptions with the largest Scale whose overview
// canvas still fits in a px*px square, within [1, MaxScale].
func OptionsForSize(px int) Options {
	opt := DefaultOptions()
	opt.Scale = min(MaxScale, max(1, px/overviewUnits))
	return opt
}

// Validate reports whether opt can be rendered.
func (opt Options) Validate() error {
	if opt.Scale < 1 || opt.Scale > MaxScale {
		return fmt.Errorf("scale %d: %w", opt.Scale, ErrInvalidDimension)
	}
	return nil
}

// CanvasSize returns the size of the overview canvas for opt.
func (opt Options) CanvasSize() image.Point {
	return image.Pt(overviewUnits*opt.Scale, overviewUnits*opt.Scale)
}
