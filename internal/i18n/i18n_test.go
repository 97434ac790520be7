package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Language
		ok   bool
	}{
		{"en", English, true},
		{" AR ", Arabic, true},
		{"fr", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	assert.Equal(t, Arabic, ParseOr("fr", Arabic))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "rtl", Arabic.Dir())
	assert.Equal(t, "ltr", English.Dir())
	assert.Equal(t, English, Arabic.Other())
	assert.Equal(t, Arabic, English.Other())
}

func TestLookup(t *testing.T) {
	assert.Equal(t, "Home", T(English, "nav.home"))
	assert.Equal(t, "الرئيسية", T(Arabic, "nav.home"))
	assert.Equal(t, "missing.key", T(Arabic, "missing.key"))

	label := Text{En: "Villa", Ar: "فيلا"}
	assert.Equal(t, "فيلا", label.In(Arabic))
	assert.Equal(t, "Villa", label.In(English))
	assert.Equal(t, "Only English", Text{En: "Only English"}.In(Arabic))
}

func TestDictionariesHaveSameKeys(t *testing.T) {
	for key := range dictionary[English] {
		_, ok := dictionary[Arabic][key]
		assert.True(t, ok, "arabic dictionary missing %q", key)
	}
}
