// Package gallery lists the portfolio's sketches and articles, localized
// for one display language at a time, and serves them over HTTP.
package gallery

import (
	"errors"
	"fmt"

	"github.com/cequella/portfolio/backend-go/internal/i18n"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
)

var ErrArticleNotFound = errors.New("article not found")

// SectionType tags an article section.
type SectionType string

const (
	SectionHeading SectionType = "heading"
	SectionText    SectionType = "text"
	SectionImage   SectionType = "image"
	SectionSketch  SectionType = "sketch"
)

// Section is one block of an article. Content is set for headings and
// text, ImageURL for images, SketchID for embedded sketches.
type Section struct {
	Type     SectionType
	Content  i18n.Text
	ImageURL string
	Caption  i18n.Text
	SketchID string
}

type Article struct {
	ID        string
	Title     i18n.Text
	Author    string
	Date      string
	Thumbnail string
	Sections  []Section
}

// SketchView is a sketch's metadata in one language.
type SketchView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type ArticleSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Date      string `json:"date"`
	Thumbnail string `json:"thumbnail"`
}

type SectionView struct {
	Type     SectionType `json:"type"`
	Content  string      `json:"content,omitempty"`
	ImageURL string      `json:"imageUrl,omitempty"`
	Caption  string      `json:"caption,omitempty"`
	SketchID string      `json:"sketchId,omitempty"`
}

type ArticleView struct {
	ArticleSummary
	Sections []SectionView `json:"sections"`
}

// Catalog is the read-only listing behind the gallery pages.
type Catalog struct {
	reg      *sketch.Registry
	articles []Article
}

// NewCatalog lists reg's sketches in registration order, plus articles.
func NewCatalog(reg *sketch.Registry, articles ...Article) *Catalog {
	return &Catalog{reg: reg, articles: articles}
}

// Validate checks that every embedded sketch is registered.
func (c *Catalog) Validate() error {
	for _, a := range c.articles {
		for _, s := range a.Sections {
			if s.Type != SectionSketch {
				continue
			}
			if _, err := c.reg.Lookup(s.SketchID); err != nil {
				return fmt.Errorf("article %s: %w", a.ID, err)
			}
		}
	}
	return nil
}

func (c *Catalog) Sketches(lang i18n.Lang) []SketchView {
	out := []SketchView{}
	for _, m := range c.reg.Metadata() {
		out = append(out, sketchView(m, lang))
	}
	return out
}

func (c *Catalog) Sketch(id string, lang i18n.Lang) (SketchView, error) {
	m, err := c.reg.Lookup(id)
	if err != nil {
		return SketchView{}, err
	}
	return sketchView(m, lang), nil
}

func (c *Catalog) Articles(lang i18n.Lang) []ArticleSummary {
	out := []ArticleSummary{}
	for _, a := range c.articles {
		out = append(out, summary(a, lang))
	}
	return out
}

func (c *Catalog) Article(id string, lang i18n.Lang) (ArticleView, error) {
	for _, a := range c.articles {
		if a.ID != id {
			continue
		}
		v := ArticleView{ArticleSummary: summary(a, lang), Sections: make([]SectionView, 0, len(a.Sections))}
		for _, s := range a.Sections {
			v.Sections = append(v.Sections, SectionView{
				Type:     s.Type,
				Content:  s.Content.Get(lang),
				ImageURL: s.ImageURL,
				Caption:  s.Caption.Get(lang),
				SketchID: s.SketchID,
			})
		}
		return v, nil
	}
	return ArticleView{}, fmt.Errorf("%w: %q", ErrArticleNotFound, id)
}

func sketchView(m sketch.Metadata, lang i18n.Lang) SketchView {
	return SketchView{
		ID:          m.ID,
		Title:       m.Title.Get(lang),
		Description: m.Description.Get(lang),
		Image:       m.Image,
	}
}

func summary(a Article, lang i18n.Lang) ArticleSummary {
	return ArticleSummary{
		ID:        a.ID,
		Title:     a.Title.Get(lang),
		Author:    a.Author,
		Date:      a.Date,
		Thumbnail: a.Thumbnail,
	}
}
