// Package i18n resolves the portfolio's two display languages.
package i18n

import (
	"golang.org/x/text/language"
)

// Lang is a supported display language.
type Lang string

const (
	PT Lang = "pt"
	EN Lang = "en"
)

var (
	supported = []language.Tag{language.Portuguese, language.English}
	matcher   = language.NewMatcher(supported)
)

// Text is a string localized in every supported language.
type Text struct {
	PT string `json:"pt"`
	EN string `json:"en"`
}

// Get returns the text for lang, falling back to Portuguese.
func (t Text) Get(lang Lang) string {
	if lang == EN && t.EN != "" {
		return t.EN
	}
	return t.PT
}

// Parse returns the supported language for a saved preference such as
// "pt" or "en-US". Unknown values report false.
func Parse(s string) (Lang, bool) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "pt":
		return PT, true
	case "en":
		return EN, true
	}
	return "", false
}

// Match picks the best supported language for an Accept-Language header,
// or fallback when nothing in the header is close enough.
func Match(acceptLanguage string, fallback Lang) Lang {
	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	if supported[index] == language.English {
		return EN
	}
	return PT
}
