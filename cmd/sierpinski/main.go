// Command sierpinski renders a Sierpinski triangle to a file.
//
// The settings are read from an optional XML configuration file,
// then overridden by the flags given on the command line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/benoitkugler/sierpinski/config"
	"github.com/benoitkugler/sierpinski/fractaldraw"
	"github.com/benoitkugler/sierpinski/fractalexport"
)

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, slog.Any("err", err))
	os.Exit(1)
}

func main() {
	var (
		configFile = flag.String("config", "", "XML configuration file")
		depth      = flag.Int("depth", 6, "recursion depth")
		size       = flag.Int("size", 600, "width and height of the output")
		format     = flag.String("format", "png", "output format: png, bmp, tiff, pdf, svg or trace")
		backend    = flag.String("backend", "rasterx", "rasterizer for images: rasterx or gg")
		fill       = flag.Bool("fill", false, "fill the root triangle")
		iterative  = flag.Bool("iterative", false, "split with an explicit stack")
		output     = flag.String("o", "", "output file, - for stdout (default sierpinski.<format>)")
		verbose    = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fractaldraw.SetLogger(logger)

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Read(*configFile)
		if err != nil {
			fatal(logger, "reading configuration", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "depth":
			cfg.Depth = *depth
		case "size":
			cfg.Width, cfg.Height = *size, *size
		case "format":
			cfg.Format = config.NormalizeFormat(*format)
		case "backend":
			cfg.Backend = *backend
		case "fill":
			cfg.FillRoot = *fill
		case "iterative":
			cfg.Iterative = *iterative
		case "o":
			cfg.Output = *output
		}
	})
	cfg.Output = cfg.OutputName()

	if err := cfg.Validate(); err != nil {
		fatal(logger, "checking configuration", err)
	}

	if cfg.Output == "-" {
		if err := writeTo(os.Stdout, cfg); err != nil {
			fatal(logger, "rendering", err)
		}
		return
	}
	if err := writeFile(cfg.Output, cfg); err != nil {
		fatal(logger, "rendering", err)
	}
	logger.Info("done", slog.String("output", cfg.Output))
}

func writeTo(w io.Writer, cfg config.Config) error {
	bw := bufio.NewWriter(w)
	if err := fractalexport.Export(bw, cfg); err != nil {
		return err
	}
	return bw.Flush()
}

// writeFile exports to the named file. On failure, the
// partially written file is removed.
func writeFile(name string, cfg config.Config) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", name, cerr)
		}
		if err != nil {
			os.Remove(name)
		}
	}()
	if err := writeTo(f, cfg); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
