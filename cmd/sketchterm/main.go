// Command sketchterm runs one gallery sketch in the terminal, two pixels
// per character cell.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"github.com/cequella/portfolio/backend-go/internal/config"
	"github.com/cequella/portfolio/backend-go/internal/i18n"
	"github.com/cequella/portfolio/backend-go/internal/render"
	"github.com/cequella/portfolio/backend-go/internal/runloop"
	"github.com/cequella/portfolio/backend-go/internal/sketches"
	"github.com/cequella/portfolio/backend-go/internal/viewer"
)

func main() {
	var (
		id      = flag.String("sketch", "dijkstra", "sketch to mount")
		lang    = flag.String("lang", "", "display language (pt or en)")
		logFile = flag.String("log", "", "write logs to this file")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The screen owns stdout, so logs are discarded unless redirected.
	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.Level()})))
	gg.SetLogger(slog.Default())

	locale := i18n.PT
	if l, ok := i18n.Parse(*lang); ok {
		locale = l
	} else if l, ok := i18n.Parse(cfg.DefaultLang); ok {
		locale = l
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.Clear()

	interval := cfg.FrameInterval
	if interval <= 0 {
		interval = runloop.DefaultFrameInterval
	}

	cols, rows := screen.Size()
	w, h := pixelSize(cols, rows)
	raster := render.NewRaster(w, h)
	defer raster.Close()

	t := &terminal{
		screen: screen,
		raster: raster,
		view: viewer.New(sketches.Default(), raster, viewer.Options{
			Width:         w,
			Height:        h,
			Locale:        locale,
			FrameInterval: interval,
		}),
		interval: interval,
	}
	if _, err := t.view.Mount(*id); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error mounting %s: %v\n", *id, err)
		os.Exit(1)
	}

	t.run()

	screen.Fini()
	if err := raster.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Render error: %v\n", err)
		os.Exit(1)
	}
}
