// Package fractalserve exposes the rendering of Sierpinski
// triangles over HTTP.
//
//	GET /render/:format?depth=6&size=600&fill=false&backend=rasterx
//	GET /healthz
//
// Rendered documents are kept in a LRU cache, keyed by the
// normalized request.
package fractalserve

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/benoitkugler/sierpinski/config"
	"github.com/benoitkugler/sierpinski/fractaldraw"
	"github.com/benoitkugler/sierpinski/fractalexport"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	// MaxDepth is lower than fractaldraw.MaxDepth to bound
	// the work done per request.
	MaxDepth = 10
	MaxSize  = 2048

	// DefaultCacheSize is the number of documents kept in memory.
	DefaultCacheSize = 64

	requestIDHeader = "X-Request-Id"
	cacheHeader     = "X-Cache"
)

// renderKey is a normalized render request.
type renderKey struct {
	format, backend string
	depth, size     int
	fill            bool
}

func (k renderKey) String() string {
	return fmt.Sprintf("%s/%s?depth=%d&size=%d&fill=%t", k.format, k.backend, k.depth, k.size, k.fill)
}

func (k renderKey) config() config.Config {
	cfg := config.Default()
	cfg.Format = k.format
	cfg.Backend = k.backend
	cfg.Width, cfg.Height = k.size, k.size
	cfg.Depth = k.depth
	cfg.FillRoot = k.fill
	return cfg
}

type Server struct {
	cache  *syncCache
	export func(io.Writer, config.Config) error
	// concurrent misses on the same key share one rendering
	flight singleflight.Group
}

// NewServer returns a server caching at most `cacheSize` documents.
func NewServer(cacheSize int) *Server {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &Server{cache: newSyncCache(cacheSize), export: fractalexport.Export}
}

// Routes registers the handlers on `r`.
func (s *Server) Routes(r *gin.Engine) {
	r.Use(requestID)
	r.GET("/healthz", s.health)
	r.GET("/render/:format", s.render)
}

// Engine returns a new gin engine serving the routes, with
// the recovery and logger middlewares.
func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s.Routes(r)
	return r
}

func requestID(c *gin.Context) {
	id := uuid.New().String()
	c.Set("requestID", id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "cached": s.cache.Len()})
}

func queryInt(c *gin.Context, name string, def, min, max int) (int, error) {
	v := c.Query(name)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, v)
	}
	if i < min || i > max {
		return 0, fmt.Errorf("%s %d out of range (%d to %d)", name, i, min, max)
	}
	return i, nil
}

func parseRequest(c *gin.Context) (renderKey, error) {
	def := config.Default()
	key := renderKey{
		format:  config.NormalizeFormat(c.Param("format")),
		backend: c.DefaultQuery("backend", def.Backend),
	}
	if fractalexport.ContentType(key.format) == "" {
		return key, fmt.Errorf("unsupported format %q", key.format)
	}
	var err error
	key.depth, err = queryInt(c, "depth", def.Depth, 0, MaxDepth)
	if err != nil {
		return key, err
	}
	key.size, err = queryInt(c, "size", def.Width, 1, MaxSize)
	if err != nil {
		return key, err
	}
	if v := c.Query("fill"); v != "" {
		key.fill, err = strconv.ParseBool(v)
		if err != nil {
			return key, fmt.Errorf("invalid fill %q", v)
		}
	}
	if key.format == "trace" || key.format == "pdf" || key.format == "svg" {
		// the backend only matters for images
		key.backend = def.Backend
	}
	return key, nil
}

func (s *Server) render(c *gin.Context) {
	key, err := parseRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contentType := fractalexport.ContentType(key.format)

	if data, ok := s.cache.Get(key); ok {
		c.Header(cacheHeader, "hit")
		c.Data(http.StatusOK, contentType, data)
		return
	}

	v, err, shared := s.flight.Do(key.String(), func() (interface{}, error) {
		var buf bytes.Buffer
		if err := s.export(&buf, key.config()); err != nil {
			return nil, err
		}
		s.cache.Add(key, buf.Bytes())
		return buf.Bytes(), nil
	})
	if err != nil {
		fractaldraw.Logger().Warn("render failed",
			slog.String("request", c.GetString("requestID")), slog.Any("err", err))
		status := http.StatusInternalServerError
		if errors.Is(err, config.ErrInvalid) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	fractaldraw.Logger().Debug("rendered",
		slog.String("request", c.GetString("requestID")), slog.String("key", key.String()), slog.Bool("shared", shared))
	c.Header(cacheHeader, "miss")
	c.Data(http.StatusOK, contentType, v.([]byte))
}
