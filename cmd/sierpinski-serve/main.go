// Command sierpinski-serve renders Sierpinski triangles over HTTP.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/benoitkugler/sierpinski/fractaldraw"
	"github.com/benoitkugler/sierpinski/fractalserve"
	"github.com/gin-gonic/gin"
)

func main() {
	var (
		addr      = flag.String("addr", ":8080", "listen address")
		cacheSize = flag.Int("cache", fractalserve.DefaultCacheSize, "number of cached documents")
		verbose   = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fractaldraw.SetLogger(logger)

	r := fractalserve.NewServer(*cacheSize).Engine()
	logger.Info("listening", slog.String("addr", *addr), slog.Int("cache", *cacheSize))
	if err := r.Run(*addr); err != nil {
		logger.Error("serving", slog.Any("err", err))
		os.Exit(1)
	}
}
