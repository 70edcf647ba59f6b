package skinresolver

import (
	"fmt"
	"image"
)

// Resolver cuts body parts out of one skin atlas and reassembles them.
// The atlas is read-only; every method returns a new buffer, so a Resolver
// may be shared between goroutines.
type Resolver struct {
	atlas *image.NRGBA
}

// NewResolver wraps a decoded 64x64 skin atlas. Legacy 64x32 atlases must be
// normalized first (see utils.NormalizeAtlas).
func NewResolver(atlas image.Image) *Resolver {
	return &Resolver{atlas: asNRGBA(atlas)}
}

// Atlas returns the source atlas.
func (r *Resolver) Atlas() image.Image {
	return r.atlas
}

// layer crops one layer of part and resizes it to its unscaled target size.
func (r *Resolver) layer(part BodyPart, variant ModelVariant, l Layer) (*image.NRGBA, error) {
	reg := Lookup(part, variant, l)
	c, err := Crop(r.atlas, reg.Crop)
	if err != nil {
		return nil, fmt.Errorf("%s %s layer: %w", part, l, err)
	}
	return Resize(c, reg.Size.X, reg.Size.Y)
}

// Part renders one body part with its overlay layer. The inner layer is
// drawn inset by the overlay margin and the outer layer is drawn over it at
// the origin, then the result is magnified by opt.Scale.
func (r *Resolver) Part(part BodyPart, opt Options) (*image.NRGBA, error) {
	if !part.Valid() {
		return nil, fmt.Errorf("part %s: %w", part, ErrUnknownBodyPart)
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	inner, err := r.layer(part, opt.Variant, Inner)
	if err != nil {
		return nil, err
	}
	outer, err := r.layer(part, opt.Variant, Outer)
	if err != nil {
		return nil, err
	}

	size := Lookup(part, opt.Variant, Outer).Size
	canvas := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	DrawLayer(canvas, inner, overlayMargin, overlayMargin, opt.Blend)
	DrawLayer(canvas, outer, 0, 0, opt.Blend)

	out, err := Scale(canvas, opt.Scale)
	if err != nil {
		return nil, err
	}
	Logger().Debug("part assembled",
		"part", part,
		"variant", opt.Variant,
		"size", out.Rect.Size())
	return out, nil
}

// Parts renders all six body parts with Part.
func (r *Resolver) Parts(opt Options) (map[BodyPart]*image.NRGBA, error) {
	parts := make(map[BodyPart]*image.NRGBA, len(crops))
	for _, p := range BodyParts() {
		img, err := r.Part(p, opt)
		if err != nil {
			return nil, err
		}
		parts[p] = img
	}
	return parts, nil
}

// FlatHead renders the 60x60 head icon: the hat replaces the face wherever
// the hat pixel is fully opaque.
func (r *Resolver) FlatHead() (*image.NRGBA, error) {
	reg := FlatLookup(Head, Classic)
	face, err := Crop(r.atlas, reg.Crop)
	if err != nil {
		return nil, fmt.Errorf("head: %w", err)
	}
	hat, err := Crop(r.atlas, Lookup(Head, Classic, Outer).Crop)
	if err != nil {
		return nil, fmt.Errorf("hat: %w", err)
	}
	icon, err := OverlayIfOpaque(face, hat)
	if err != nil {
		return nil, err
	}
	return Resize(icon, reg.Size.X, reg.Size.Y)
}

// FlatPart renders a single-layer body part at its fixed flat size
// (60x90 body, 30x90 limbs). Head is delegated to FlatHead.
func (r *Resolver) FlatPart(part BodyPart, variant ModelVariant) (*image.NRGBA, error) {
	if !part.Valid() {
		return nil, fmt.Errorf("flat part %s: %w", part, ErrUnknownBodyPart)
	}
	if part == Head {
		return r.FlatHead()
	}
	reg := FlatLookup(part, variant)
	c, err := Crop(r.atlas, reg.Crop)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", part, err)
	}
	return Resize(c, reg.Size.X, reg.Size.Y)
}
