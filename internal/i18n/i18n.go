// Package i18n holds the two display languages of the site and the small
// dictionary the page chrome is rendered from.
package i18n

import "strings"

type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"

	Default = English
)

// Parse accepts "en" or "ar" in any case, with surrounding whitespace.
func Parse(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, true
	case Arabic:
		return Arabic, true
	}
	return "", false
}

// ParseOr returns fallback when s is not a known language.
func ParseOr(s string, fallback Language) Language {
	if l, ok := Parse(s); ok {
		return l
	}
	return fallback
}

func (l Language) IsRTL() bool {
	return l == Arabic
}

// Dir is the value of the document's dir attribute.
func (l Language) Dir() string {
	if l.IsRTL() {
		return "rtl"
	}
	return "ltr"
}

// Other is the language offered by the header toggle.
func (l Language) Other() Language {
	if l == Arabic {
		return English
	}
	return Arabic
}

func (l Language) String() string {
	return string(l)
}

// Text is a label carried in both languages.
type Text struct {
	En string
	Ar string
}

func (t Text) In(l Language) string {
	if l == Arabic && t.Ar != "" {
		return t.Ar
	}
	return t.En
}

// T looks key up in the dictionary for l, falling back to English and then
// to the key itself.
func T(l Language, key string) string {
	if v, ok := dictionary[l][key]; ok {
		return v
	}
	if v, ok := dictionary[English][key]; ok {
		return v
	}
	return key
}
