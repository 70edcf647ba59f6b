package skinresolver

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// asNRGBA returns img as a zero-origin *image.NRGBA, copying only when the
// concrete type or origin differ.
func asNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(img)
}

// Crop copies the region r of src into a new buffer of size r.W x r.H.
// r is relative to the top-left corner of src and must lie fully inside it.
func Crop(src image.Image, r Rect) (*image.NRGBA, error) {
	b := src.Bounds()
	if r.W <= 0 || r.H <= 0 {
		return nil, fmt.Errorf("crop %v: %w", r, ErrOutOfBounds)
	}
	abs := r.Bounds().Add(b.Min)
	if !abs.In(b) {
		return nil, fmt.Errorf("crop %v from %dx%d: %w", r, b.Dx(), b.Dy(), ErrOutOfBounds)
	}
	return imaging.Crop(src, abs), nil
}

// Resize scales src to w x h with nearest-neighbor sampling. Destination
// pixel (i, j) reads source pixel (i*sw/w, j*sh/h), clamped to the last
// row and column.
func Resize(src image.Image, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("resize to %dx%d: %w", w, h, ErrInvalidDimension)
	}
	s := asNRGBA(src)
	sw, sh := s.Rect.Dx(), s.Rect.Dy()
	if sw == 0 || sh == 0 {
		return nil, fmt.Errorf("resize empty %dx%d source: %w", sw, sh, ErrInvalidDimension)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for j := range h {
		sy := min(j*sh/h, sh-1)
		srow := s.Pix[sy*s.Stride:]
		drow := dst.Pix[j*dst.Stride:]
		for i := range w {
			sx := min(i*sw/w, sw-1)
			copy(drow[i*4:i*4+4], srow[sx*4:sx*4+4])
		}
	}
	return dst, nil
}

// Scale magnifies src by an integer factor in [1, MaxScale] on both axes.
func Scale(src image.Image, factor int) (*image.NRGBA, error) {
	if factor < 1 || factor > MaxScale {
		return nil, fmt.Errorf("scale factor %d: %w", factor, ErrInvalidDimension)
	}
	b := src.Bounds()
	return Resize(src, b.Dx()*factor, b.Dy()*factor)
}
