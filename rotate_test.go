package skinresolver

import (
	"image"
	"image/color"
	"testing"
)

func TestRotateZero(t *testing.T) {
	src := patterned(6, 9)
	got := Rotate(src, 0, Nearest)
	equalPixels(t, got, src)
}

func TestRotateExpandsBounds(t *testing.T) {
	src := filled(40, 104, color.NRGBA{R: 200, A: 255})
	for _, deg := range []float64{8, -8} {
		got := Rotate(src, deg, Nearest)
		w, h := got.Rect.Dx(), got.Rect.Dy()
		if w <= 40 || h <= 104 {
			t.Errorf("Rotate(%v) size %dx%d, want larger than 40x104", deg, w, h)
		}
		if c := got.NRGBAAt(0, 0); c.A != 0 {
			t.Errorf("Rotate(%v) corner = %v, want transparent", deg, c)
		}
		if c := got.NRGBAAt(w/2, h/2); c.A != 255 {
			t.Errorf("Rotate(%v) center = %v, want opaque", deg, c)
		}
	}
}

func TestParseInterpolation(t *testing.T) {
	for _, i := range []Interpolation{Nearest, Linear, Cubic} {
		got, err := ParseInterpolation(i.String())
		if err != nil || got != i {
			t.Errorf("ParseInterpolation(%q) = %v, %v", i, got, err)
		}
	}
	if _, err := ParseInterpolation("lanczos"); err == nil {
		t.Error("ParseInterpolation(lanczos) succeeded")
	}
}

// firstOpaque returns the smallest x in row y with a visible pixel, or -1.
func firstOpaque(img *image.NRGBA, y int) int {
	for x := range img.Rect.Dx() {
		if img.NRGBAAt(x, y).A != 0 {
			return x
		}
	}
	return -1
}

func TestRotateDirection(t *testing.T) {
	src := filled(20, 100, color.NRGBA{G: 255, A: 255})
	tests := []struct {
		deg       float64
		clockwise bool
	}{
		{8, true},
		{-8, false},
		{20, true},
	}
	for _, tt := range tests {
		got := Rotate(src, tt.deg, Nearest)
		h := got.Rect.Dy()
		top, bottom := firstOpaque(got, 5), firstOpaque(got, h-6)
		if top < 0 || bottom < 0 {
			t.Fatalf("Rotate(%v): empty rows (top %d, bottom %d)", tt.deg, top, bottom)
		}
		// Clockwise swings the top to the right and the bottom to the left.
		if tt.clockwise && top <= bottom {
			t.Errorf("Rotate(%v): top x %d, bottom x %d; want top > bottom", tt.deg, top, bottom)
		}
		if !tt.clockwise && top >= bottom {
			t.Errorf("Rotate(%v): top x %d, bottom x %d; want top < bottom", tt.deg, top, bottom)
		}
	}
}
