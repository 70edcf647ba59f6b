package utils

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	sr "github.com/setanarut/skinresolver"
)

// legacyCopies mirrors the right limbs of a 64x32 atlas into the left limb
// slots of a 64x64 atlas: {x, y, dx, dy, w, h}, flipped horizontally.
var legacyCopies = [...][6]int{
	{4, 16, 16, 32, 4, 4},
	{8, 16, 16, 32, 4, 4},
	{0, 20, 24, 32, 4, 12},
	{4, 20, 16, 32, 4, 12},
	{8, 20, 8, 32, 4, 12},
	{12, 20, 16, 32, 4, 12},
	{44, 16, -8, 32, 4, 4},
	{48, 16, -8, 32, 4, 4},
	{40, 20, 0, 32, 4, 12},
	{44, 20, -8, 32, 4, 12},
	{48, 20, -16, 32, 4, 12},
	{52, 20, -8, 32, 4, 12},
}

// NormalizeAtlas returns a zero-origin 64x64 copy of img. A legacy 64x32
// atlas is expanded: the left arm and leg are mirrored from the right ones
// and a fully opaque hat area is made transparent.
func NormalizeAtlas(img image.Image) (*image.NRGBA, error) {
	b := img.Bounds()
	switch {
	case b.Dx() == 64 && b.Dy() == 64:
		return imaging.Clone(img), nil
	case b.Dx() == 64 && b.Dy() == 32:
		sr.Logger().Warn("converting legacy 64x32 skin atlas")
		return expandLegacy(img), nil
	}
	return nil, fmt.Errorf("skin atlas %dx%d: %w", b.Dx(), b.Dy(), sr.ErrInvalidDimension)
}

func expandLegacy(src image.Image) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	draw.Draw(dst, image.Rect(0, 0, 64, 32), src, src.Bounds().Min, draw.Src)
	for _, c := range legacyCopies {
		x, y, dx, dy, w, h := c[0], c[1], c[2], c[3], c[4], c[5]
		for yy := range h {
			for xx := range w {
				dst.SetNRGBA(x+dx+xx, y+dy+yy, dst.NRGBAAt(x+w-1-xx, y+yy))
			}
		}
	}
	clearOpaqueHat(dst, image.Rect(32, 0, 64, 16))
	return dst
}

// clearOpaqueHat makes r fully transparent when it holds no translucent
// pixel. Old skins often painted the hat area solid.
func clearOpaqueHat(img *image.NRGBA, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.NRGBAAt(x, y).A < 128 {
				return
			}
		}
	}
	draw.Draw(img, r, image.Transparent, image.Point{}, draw.Src)
}
