package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sr "github.com/setanarut/skinresolver"
	"github.com/setanarut/skinresolver/utils"
)

func defaults() CLI {
	return CLI{
		Out:           "skin.png",
		Mode:          "overview",
		Scale:         8,
		ArmAngle:      8,
		ArmShrink:     6,
		Interp:        "nearest",
		Blend:         "replace",
		PaletteMethod: "dominantcolor",
	}
}

func TestCLIOptions(t *testing.T) {
	c := defaults()
	opt, err := c.options()
	if err != nil {
		t.Fatal(err)
	}
	if opt != sr.DefaultOptions() {
		t.Errorf("default flags = %+v, want %+v", opt, sr.DefaultOptions())
	}

	c = defaults()
	c.Slim = true
	c.Scale = 2
	c.ArmAngle = 12.5
	c.ArmShrink = 3
	c.Interp = "cubic"
	c.Blend = "over"
	opt, err = c.options()
	if err != nil {
		t.Fatal(err)
	}
	want := sr.Options{
		Variant:       sr.Slim,
		Scale:         2,
		ArmAngle:      12.5,
		ArmShrink:     3,
		Interpolation: sr.Cubic,
		Blend:         sr.BlendOver,
	}
	if opt != want {
		t.Errorf("options = %+v, want %+v", opt, want)
	}
}

func TestCLIOptionsInvalid(t *testing.T) {
	tests := map[string]func(*CLI){
		"zero scale": func(c *CLI) { c.Scale = 0 },
		"huge scale": func(c *CLI) { c.Scale = sr.MaxScale + 1 },
		"bad interp": func(c *CLI) { c.Interp = "lanczos" },
		"bad blend":  func(c *CLI) { c.Blend = "multiply" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := defaults()
			mutate(&c)
			if _, err := c.options(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCLIValidate(t *testing.T) {
	tests := []struct {
		mode string
		flat bool
		ok   bool
	}{
		{"overview", false, true},
		{"overview", true, false},
		{"head", true, true},
		{"left-arm", true, true},
		{"body", false, true},
	}
	for _, tt := range tests {
		c := defaults()
		c.Mode, c.Flat = tt.mode, tt.flat
		err := c.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("mode=%s flat=%v: err = %v", tt.mode, tt.flat, err)
		}
	}
}

func TestRunRejectsFlatOverview(t *testing.T) {
	c := defaults()
	c.Flat = true
	c.Input = filepath.Join(t.TempDir(), "missing.png")
	if err := c.run(context.Background()); !errors.Is(err, errFlatOverview) {
		t.Fatalf("err = %v, want errFlatOverview", err)
	}
}

func writeSkin(t *testing.T, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	path := filepath.Join(t.TempDir(), "skin.png")
	if err := utils.SaveImage(img, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	sr.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { sr.SetLogger(nil) })
	return &buf
}

func TestRun(t *testing.T) {
	tests := []struct {
		mode string
		flat bool
		size image.Point
	}{
		{"overview", false, image.Pt(264, 264)},
		{"head", false, image.Pt(72, 72)},
		{"head", true, image.Pt(60, 60)},
		{"right-leg", true, image.Pt(30, 90)},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			logs := captureLog(t)
			c := defaults()
			c.Input = writeSkin(t, color.NRGBA{R: 255, A: 255})
			c.Out = filepath.Join(t.TempDir(), "out.png")
			c.Mode, c.Flat, c.Scale = tt.mode, tt.flat, 1
			if err := c.run(context.Background()); err != nil {
				t.Fatal(err)
			}
			out, err := utils.LoadFile(c.Out)
			if err != nil {
				t.Fatal(err)
			}
			if got := out.Bounds().Size(); got != tt.size {
				t.Errorf("size = %v, want %v", got, tt.size)
			}
			if !strings.Contains(logs.String(), "average=#ff0000") {
				t.Errorf("log lacks average color: %s", logs.String())
			}
		})
	}
}

func TestRunPalette(t *testing.T) {
	captureLog(t)
	c := defaults()
	c.Input = writeSkin(t, color.NRGBA{G: 200, B: 40, A: 255})
	c.Out = filepath.Join(t.TempDir(), "out.png")
	c.Scale = 1
	c.Palette = 3
	if err := c.run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(c.Out + ".palette.png"); err != nil {
		t.Error(err)
	}
}

func TestRunMissingInput(t *testing.T) {
	c := defaults()
	c.Input = filepath.Join(t.TempDir(), "nope.png")
	c.Out = filepath.Join(t.TempDir(), "out.png")
	if err := c.run(context.Background()); !errors.Is(err, sr.ErrSourceNotFound) {
		t.Fatalf("err = %v, want ErrSourceNotFound", err)
	}
}
