package skinresolver

import (
	"fmt"
	"image"
)

// Placement is one part of the overview, already rotated, and the canvas
// position of its top-left corner.
type Placement struct {
	Part  BodyPart
	At    image.Point
	Image *image.NRGBA
}

// drawOrder lists parts back to front.
var drawOrder = [...]BodyPart{LeftLeg, RightLeg, LeftArm, RightArm, Body, Head}

// Layout rotates the arms of parts and computes where every part goes on
// the overview canvas, in drawing order. parts must hold all six parts as
// returned by Resolver.Parts with the same options.
func Layout(opt Options, parts map[BodyPart]*image.NRGBA) ([]Placement, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	for _, p := range drawOrder {
		if parts[p] == nil {
			return nil, fmt.Errorf("layout: missing %s", p)
		}
	}

	s := opt.Scale
	leftArm := Rotate(parts[LeftArm], -opt.ArmAngle, opt.Interpolation)
	rightArm := Rotate(parts[RightArm], opt.ArmAngle, opt.Interpolation)

	shoulder := 112
	if opt.Variant == Slim {
		shoulder = 104
	}

	out := make([]Placement, 0, len(drawOrder))
	for _, p := range drawOrder {
		pl := Placement{Part: p, Image: parts[p]}
		switch p {
		case LeftLeg:
			pl.At = image.Pt(128*s, 160*s)
		case RightLeg:
			pl.At = image.Pt(96*s, 160*s)
		case LeftArm:
			pl.Image = leftArm
			pl.At = image.Pt((160-opt.ArmShrink)*s, 64*s)
		case RightArm:
			pl.Image = rightArm
			pl.At = image.Pt((shoulder+opt.ArmShrink)*s-rightArm.Rect.Dx(), 64*s)
		case Body:
			pl.At = image.Pt(96*s, 64*s)
		case Head:
			pl.At = image.Pt(96*s, 0)
		}
		out = append(out, pl)
	}
	return out, nil
}

// Overview renders the full double-layer front view on a 264*Scale square
// canvas. Later parts are drawn on top of earlier ones.
func (r *Resolver) Overview(opt Options) (*image.NRGBA, error) {
	parts, err := r.Parts(opt)
	if err != nil {
		return nil, err
	}
	placements, err := Layout(opt, parts)
	if err != nil {
		return nil, err
	}

	size := opt.CanvasSize()
	canvas := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	for _, pl := range placements {
		Logger().Debug("overview placement",
			"part", pl.Part,
			"at", pl.At,
			"size", pl.Image.Rect.Size())
		DrawLayer(canvas, pl.Image, pl.At.X, pl.At.Y, opt.Blend)
	}
	return canvas, nil
}
