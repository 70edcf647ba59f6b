package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	sr "github.com/setanarut/skinresolver"
	"github.com/setanarut/skinresolver/utils"
)

const desc = `Cuts a Minecraft skin atlas into body parts or renders a double-layer front view.`

type CLI struct {
	Input string `short:"i" required:"" help:"Skin PNG path or http(s) URL."`
	Out   string `short:"o" default:"skin.png" help:"Output PNG path."`

	Mode string `short:"m" default:"overview" enum:"overview,head,body,left-arm,right-arm,left-leg,right-leg" help:"What to render."`
	Flat bool   `help:"Single-layer legacy rendering of one part (fixed 60x60 head, 60x90 body, 30x90 limbs)."`

	Slim      bool    `help:"Slim (3px) arm model."`
	Scale     int     `default:"8" help:"Integer magnification."`
	ArmAngle  float64 `default:"8" help:"Arm tilt in degrees."`
	ArmShrink int     `default:"6" help:"Arm inset towards the body in unscaled pixels."`
	Interp    string  `default:"nearest" enum:"nearest,linear,cubic" help:"Arm rotation filter."`
	Blend     string  `default:"replace" enum:"replace,over" help:"Layer compositing."`

	Palette       int    `default:"0" help:"Also write a K-color palette of the result next to the output."`
	PaletteMethod string `default:"dominantcolor" enum:"dominantcolor,kmeans" help:"Palette extraction method."`

	Verbose bool `short:"v" help:"Debug logging."`
}

var errFlatOverview = errors.New("--flat renders a single part and cannot be combined with --mode overview")

// Validate is called by kong after parsing.
func (c *CLI) Validate() error {
	if c.Flat && c.Mode == "overview" {
		return errFlatOverview
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(
		&cli,
		kong.Name("skinresolver"),
		kong.Description(desc),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	sr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx.FatalIfErrorf(cli.run(context.Background()))
}

func (c *CLI) options() (sr.Options, error) {
	opt := sr.DefaultOptions()
	if c.Slim {
		opt.Variant = sr.Slim
	}
	opt.Scale = c.Scale
	opt.ArmAngle = c.ArmAngle
	opt.ArmShrink = c.ArmShrink

	var err error
	if opt.Interpolation, err = sr.ParseInterpolation(c.Interp); err != nil {
		return opt, err
	}
	if opt.Blend, err = sr.ParseBlendMode(c.Blend); err != nil {
		return opt, err
	}
	return opt, opt.Validate()
}

func (c *CLI) render(r *sr.Resolver, opt sr.Options) (image.Image, error) {
	if c.Mode == "overview" {
		return r.Overview(opt)
	}
	part, err := sr.ParseBodyPart(c.Mode)
	if err != nil {
		return nil, err
	}
	if c.Flat {
		return r.FlatPart(part, opt.Variant)
	}
	return r.Part(part, opt)
}

func (c *CLI) run(ctx context.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}
	opt, err := c.options()
	if err != nil {
		return err
	}
	src, err := utils.Load(ctx, c.Input)
	if err != nil {
		return err
	}
	atlas, err := utils.NormalizeAtlas(src)
	if err != nil {
		return err
	}

	out, err := c.render(sr.NewResolver(atlas), opt)
	if err != nil {
		return err
	}
	if err := utils.SaveImage(out, c.Out); err != nil {
		return err
	}
	attrs := []any{"path", c.Out, "size", out.Bounds().Size()}
	if avg, ok := utils.AverageColor(out); ok {
		attrs = append(attrs, "average", avg.Hex())
	}
	sr.Logger().Info("wrote", attrs...)

	if c.Palette > 0 {
		method, err := utils.ParsePaletteMethod(c.PaletteMethod)
		if err != nil {
			return err
		}
		palette := utils.ExtractPalette(out, c.Palette, method)
		utils.SortPaletteByBrightness(palette)
		name := c.Out + ".palette.png"
		if err := utils.SavePalette(palette, 64, name); err != nil {
			return fmt.Errorf("palette: %w", err)
		}
		sr.Logger().Info("wrote", "path", name, "colors", len(palette))
	}
	return nil
}
