// Command sierpinski-view shows a Sierpinski triangle in a window.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"

	"github.com/benoitkugler/sierpinski/config"
	"github.com/benoitkugler/sierpinski/fractaldraw"
	"github.com/benoitkugler/sierpinski/fractalgg"
	"github.com/benoitkugler/sierpinski/fractalraster"
	"github.com/hajimehoshi/ebiten/v2"
	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*windowDisplay)(nil) // assert interface conformance

// windowDisplay is a frame buffer, uploaded to the
// window on the next frame after Display is called.
type windowDisplay struct {
	buf   *image.RGBA
	img   *ebiten.Image
	dirty bool
}

func newWindowDisplay(width, height int) *windowDisplay {
	return &windowDisplay{buf: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (d *windowDisplay) Size() (x, y int16) {
	b := d.buf.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *windowDisplay) SetPixel(x, y int16, c color.RGBA) { d.buf.SetRGBA(int(x), int(y), c) }

func (d *windowDisplay) Display() error {
	d.dirty = true
	return nil
}

func (d *windowDisplay) Update() error { return nil }

func (d *windowDisplay) Draw(screen *ebiten.Image) {
	if d.img == nil {
		b := d.buf.Bounds()
		d.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	if d.dirty {
		d.img.WritePixels(d.buf.Pix)
		d.dirty = false
	}
	screen.DrawImage(d.img, nil)
}

func (d *windowDisplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := d.buf.Bounds()
	return b.Dx(), b.Dy()
}

func main() {
	var (
		configFile = flag.String("config", "", "XML configuration file")
		depth      = flag.Int("depth", 6, "recursion depth")
		size       = flag.Int("size", 600, "size of the rendered image")
		window     = flag.Int("window", 600, "size of the window")
		backend    = flag.String("backend", "rasterx", "rasterizer: rasterx or gg")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	fractaldraw.SetLogger(logger)
	fatal := func(msg string, err error) {
		logger.Error(msg, slog.Any("err", err))
		os.Exit(1)
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Read(*configFile); err != nil {
			fatal("reading configuration", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "depth":
			cfg.Depth = *depth
		case "size":
			cfg.Width, cfg.Height = *size, *size
		case "backend":
			cfg.Backend = *backend
		}
	})
	// the window only shows images
	cfg.Format = "png"
	if err := cfg.Validate(); err != nil {
		fatal("checking configuration", err)
	}
	if *window <= 0 || *window > 2048 {
		fatal("checking window size", fmt.Errorf("window size %d out of range", *window))
	}
	style, _ := cfg.Style.Resolve()

	var img image.Image
	if cfg.Backend == "gg" {
		var err error
		if img, err = fractalgg.RasterImage(cfg.Width, cfg.Height, style, cfg.Options()); err != nil {
			fatal("rendering", err)
		}
	} else {
		img = fractalraster.RasterImage(cfg.Width, cfg.Height, style, cfg.Options())
	}

	display := newWindowDisplay(*window, *window)
	if err := fractalraster.Blit(display, img); err != nil {
		fatal("displaying", err)
	}

	ebiten.SetWindowTitle("Sierpinski")
	ebiten.SetWindowSize(*window, *window)
	if err := ebiten.RunGame(display); err != nil {
		fatal("running window", err)
	}
}
