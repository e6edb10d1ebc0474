// Package fractalexport renders a configuration to one of the
// supported output formats.
package fractalexport

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/benoitkugler/sierpinski/config"
	"github.com/benoitkugler/sierpinski/fractaldraw"
	"github.com/benoitkugler/sierpinski/fractalgg"
	"github.com/benoitkugler/sierpinski/fractalpdf"
	"github.com/benoitkugler/sierpinski/fractalraster"
	"github.com/benoitkugler/sierpinski/fractalrecord"
	"github.com/benoitkugler/sierpinski/fractalsvg"
)

// ContentType returns the MIME type of the given format,
// or an empty string if it is not supported.
func ContentType(format string) string {
	switch format {
	case "pdf":
		return "application/pdf"
	case "svg":
		return "image/svg+xml"
	case "trace":
		return "text/plain; charset=utf-8"
	}
	if f, err := fractalraster.ParseFormat(format); err == nil {
		return f.ContentType()
	}
	return ""
}

// Export validates `cfg`, renders the triangle it describes
// and writes it to `w`, encoded in `cfg.Format`.
func Export(w io.Writer, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	style, err := cfg.Style.Resolve()
	if err != nil {
		return err
	}
	opts := cfg.Options()
	fractaldraw.Logger().Info("exporting",
		slog.String("format", cfg.Format), slog.String("backend", cfg.Backend),
		slog.Int("width", cfg.Width), slog.Int("height", cfg.Height), slog.Int("depth", cfg.Depth))

	width, height := float64(cfg.Width), float64(cfg.Height)
	switch cfg.Format {
	case "pdf":
		err = fractalpdf.RenderPDF(w, width, height, style, opts)
	case "svg":
		err = fractalsvg.RenderSVG(w, width, height, style, opts)
	case "trace":
		err = writeTrace(w, width, height, opts)
	default:
		err = exportRaster(w, cfg, style, opts)
	}
	if err != nil {
		return fmt.Errorf("export to %s: %w", cfg.Format, err)
	}
	return nil
}

func exportRaster(w io.Writer, cfg config.Config, style fractaldraw.Style, opts fractaldraw.Options) error {
	format, err := fractalraster.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	var img image.Image
	if cfg.Backend == "gg" {
		img, err = fractalgg.RasterImage(cfg.Width, cfg.Height, style, opts)
		if err != nil {
			return err
		}
	} else {
		img = fractalraster.RasterImage(cfg.Width, cfg.Height, style, opts)
	}
	return fractalraster.Encode(w, img, format)
}

// writeTrace writes the command counts as a comment line,
// followed by the recorded commands, one per line.
func writeTrace(w io.Writer, width, height float64, opts fractaldraw.Options) error {
	var rec fractalrecord.Recorder
	fractaldraw.Render(&rec, width, height, opts)
	if _, err := fmt.Fprintf(w, "# %s\n", rec.Stats()); err != nil {
		return err
	}
	_, err := io.WriteString(w, rec.String())
	return err
}
