package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/cequella/portfolio/backend-go/internal/config"
	"github.com/cequella/portfolio/backend-go/internal/gallery"
	"github.com/cequella/portfolio/backend-go/internal/i18n"
	mw "github.com/cequella/portfolio/backend-go/internal/middleware"
	"github.com/cequella/portfolio/backend-go/internal/sketches"
	"github.com/cequella/portfolio/backend-go/internal/thumbnail"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()})))

	lang, ok := i18n.Parse(cfg.DefaultLang)
	if !ok {
		slog.Warn("unsupported default language, using pt", "lang", cfg.DefaultLang)
		lang = i18n.PT
	}

	catalog := gallery.NewCatalog(sketches.Default(), gallery.Articles()...)
	if err := catalog.Validate(); err != nil {
		slog.Error("validate catalog", "error", err)
		os.Exit(1)
	}
	galleryHandler := gallery.NewHandler(catalog, lang)
	thumbHandler := thumbnail.NewHandler(cfg.AssetDir)

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.Origins()))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	galleryHandler.Register(r.PathPrefix("/api").Subrouter())

	// Prerendered previews, see cmd/thumbgen
	r.PathPrefix("/thumbnails/").Handler(thumbHandler.Serve()).Methods("GET")

	// Frontend bundle including main.wasm
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.WebDir))).Methods("GET")

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr, "lang", lang)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
