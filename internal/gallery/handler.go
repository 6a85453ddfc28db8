package gallery

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cequella/portfolio/backend-go/internal/i18n"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
)

type Handler struct {
	catalog  *Catalog
	fallback i18n.Lang
}

// NewHandler serves catalog, answering in fallback when a request names
// no supported language.
func NewHandler(catalog *Catalog, fallback i18n.Lang) *Handler {
	return &Handler{catalog: catalog, fallback: fallback}
}

// Register mounts the gallery routes on r.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/sketches", h.ListSketches).Methods("GET")
	r.HandleFunc("/sketches/{sketchId}", h.GetSketch).Methods("GET")
	r.HandleFunc("/articles", h.ListArticles).Methods("GET")
	r.HandleFunc("/articles/{articleId}", h.GetArticle).Methods("GET")
}

func (h *Handler) ListSketches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Sketches(h.lang(r)))
}

func (h *Handler) GetSketch(w http.ResponseWriter, r *http.Request) {
	v, err := h.catalog.Sketch(mux.Vars(r)["sketchId"], h.lang(r))
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Articles(h.lang(r)))
}

func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	v, err := h.catalog.Article(mux.Vars(r)["articleId"], h.lang(r))
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// lang prefers an explicit ?lang= over the Accept-Language header.
func (h *Handler) lang(r *http.Request) i18n.Lang {
	if l, ok := i18n.Parse(r.URL.Query().Get("lang")); ok {
		return l
	}
	return i18n.Match(r.Header.Get("Accept-Language"), h.fallback)
}

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sketch.ErrUnknownSketch):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "sketch not found"})
	case errors.Is(err, ErrArticleNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "article not found"})
	default:
		slog.Error("gallery error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
