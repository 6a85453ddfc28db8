// Command thumbgen prerenders a PNG preview of every gallery sketch into
// the configured asset directory.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/cequella/portfolio/backend-go/internal/config"
	"github.com/cequella/portfolio/backend-go/internal/i18n"
	"github.com/cequella/portfolio/backend-go/internal/sketches"
	"github.com/cequella/portfolio/backend-go/internal/thumbnail"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	var (
		dir  = flag.String("out", cfg.AssetDir, "output directory")
		lang = flag.String("lang", cfg.DefaultLang, "display language (pt or en)")
	)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()})))
	gg.SetLogger(slog.Default())

	locale, ok := i18n.Parse(*lang)
	if !ok {
		slog.Warn("unsupported language, using pt", "lang", *lang)
		locale = i18n.PT
	}

	written, err := thumbnail.Generate(sketches.Default(), *dir, thumbnail.Options{
		Width:         cfg.ThumbWidth,
		Height:        cfg.ThumbHeight,
		Frames:        cfg.ThumbFrames,
		FrameInterval: cfg.FrameInterval,
		Locale:        locale,
	})
	if err != nil {
		slog.Error("generate thumbnails", "error", err)
		os.Exit(1)
	}
	slog.Info("thumbnails done", "count", len(written), "dir", *dir)
}
