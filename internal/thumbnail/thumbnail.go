// Package thumbnail renders gallery thumbnails offline and serves the
// resulting files.
package thumbnail

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cequella/portfolio/backend-go/internal/i18n"
	"github.com/cequella/portfolio/backend-go/internal/render"
	"github.com/cequella/portfolio/backend-go/internal/runloop"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
	"github.com/cequella/portfolio/backend-go/internal/viewer"
)

// Options sizes the rendered image and says how long each sketch runs
// before it is captured.
type Options struct {
	Width, Height int
	Frames        int
	FrameInterval time.Duration
	Locale        i18n.Lang
}

// Render mounts id on a fresh raster, lets it run for opts.Frames frames,
// destroys it and writes the last frame as PNG.
func Render(reg *sketch.Registry, id string, opts Options, w io.Writer) error {
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = runloop.DefaultFrameInterval
	}
	raster := render.NewRaster(opts.Width, opts.Height)
	defer raster.Close()

	v := viewer.New(reg, raster, viewer.Options{
		Width:         opts.Width,
		Height:        opts.Height,
		Locale:        opts.Locale,
		FrameInterval: interval,
	})
	if _, err := v.Mount(id); err != nil {
		return err
	}
	v.Tick(time.Duration(opts.Frames) * interval)
	v.Unmount()

	if err := raster.Err(); err != nil {
		return fmt.Errorf("render %s: %w", id, err)
	}
	if err := raster.EncodePNG(w); err != nil {
		return fmt.Errorf("encode %s: %w", id, err)
	}
	return nil
}

// Generate writes <id>.png into dir for every registered sketch and
// returns the written paths.
func Generate(reg *sketch.Registry, dir string, opts Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create thumbnail dir: %w", err)
	}
	var written []string
	for _, id := range reg.IDs() {
		path := filepath.Join(dir, id+".png")
		if err := writeFile(path, func(w io.Writer) error { return Render(reg, id, opts, w) }); err != nil {
			return written, err
		}
		slog.Info("thumbnail written", "sketch", id, "path", path)
		written = append(written, path)
	}
	return written, nil
}

func writeFile(path string, fill func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fill(out); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}

// Handler serves generated thumbnails.
type Handler struct {
	dir string
}

// NewHandler creates a handler serving files from dir.
func NewHandler(dir string) *Handler {
	if err := os.MkdirAll(dir, 0755); err != nil {
		slog.Error("create thumbnail dir", "error", err, "dir", dir)
	}
	return &Handler{dir: dir}
}

// Serve returns an http.Handler for /thumbnails/ with caching headers.
func (h *Handler) Serve() http.Handler {
	fs := http.FileServer(http.Dir(h.dir))
	return http.StripPrefix("/thumbnails/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Thumbnails are regenerated only at build time, so files are immutable
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		fs.ServeHTTP(w, r)
	}))
}
