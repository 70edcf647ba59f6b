package utils

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestSortPaletteByBrightness(t *testing.T) {
	p := []colorful.Color{
		{R: 1, G: 1, B: 1},
		{R: 0, G: 0, B: 0},
		{R: 0, G: 1, B: 0},
		{R: 0, G: 0, B: 1},
	}
	SortPaletteByBrightness(p)
	want := []colorful.Color{
		{R: 0, G: 0, B: 0},
		{R: 0, G: 0, B: 1},
		{R: 0, G: 1, B: 0},
		{R: 1, G: 1, B: 1},
	}
	for i := range want {
		if p[i] != want[i] {
			t.Errorf("p[%d] = %v, want %v", i, p[i], want[i])
		}
	}
}

func TestSelectDiverse(t *testing.T) {
	black := colorful.Color{}
	almostBlack := colorful.Color{R: 0.02, G: 0.02, B: 0.02}
	white := colorful.Color{R: 1, G: 1, B: 1}
	got := selectDiverse([]weightedColor{
		{Col: almostBlack, Weight: 9},
		{Col: black, Weight: 10},
		{Col: white, Weight: 1},
	}, 2)
	if len(got) != 2 || got[0] != black || got[1] != white {
		t.Errorf("selectDiverse = %v, want [black white]", got)
	}
	if got := selectDiverse(nil, 3); got != nil {
		t.Errorf("selectDiverse(nil) = %v", got)
	}
}

func TestAverageColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})
	// (0,1) and (1,1) stay transparent and must not pull towards black.

	c, ok := AverageColor(img)
	if !ok {
		t.Fatal("no visible pixels")
	}
	if math.Abs(c.R-0.5) > 1e-9 || c.G != 0 || math.Abs(c.B-0.5) > 1e-9 {
		t.Errorf("AverageColor = %v, want (0.5, 0, 0.5)", c)
	}

	if _, ok := AverageColor(image.NewNRGBA(image.Rect(0, 0, 3, 3))); ok {
		t.Error("AverageColor of transparent image reported ok")
	}
}

func TestExtractPaletteEmpty(t *testing.T) {
	img := solid(8, 8, color.NRGBA{R: 40, G: 80, B: 120, A: 255})
	if p := ExtractPalette(img, 0, PaletteMethodKMeans); p != nil {
		t.Errorf("k=0 palette = %v", p)
	}
	if p := ExtractPalette(img, 0, PaletteMethodDominantColor); p != nil {
		t.Errorf("k=0 palette = %v", p)
	}
}

func TestParsePaletteMethod(t *testing.T) {
	for _, m := range []PaletteMethod{PaletteMethodDominantColor, PaletteMethodKMeans} {
		got, err := ParsePaletteMethod(m.String())
		if err != nil || got != m {
			t.Errorf("ParsePaletteMethod(%q) = %v, %v", m, got, err)
		}
	}
	if _, err := ParsePaletteMethod("median-cut"); err == nil {
		t.Error("ParsePaletteMethod(median-cut) succeeded")
	}
}
