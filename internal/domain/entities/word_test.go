package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTranslations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "single", raw: "Cat", want: []string{"cat"}},
		{name: "comma", raw: "house, home", want: []string{"house", "home"}},
		{name: "en dash", raw: "to eat – to dine", want: []string{"to eat", "to dine"}},
		{name: "spaced hyphen", raw: "dog - hound", want: []string{"dog", "hound"}},
		{name: "hyphenated word kept", raw: "well-known", want: []string{"well-known"}},
		{name: "semicolon and blanks", raw: " big ;; , large ", want: []string{"big", "large"}},
		{name: "duplicates dropped", raw: "Cat, cat", want: []string{"cat"}},
		{name: "empty", raw: " , – ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTranslations(tt.raw))
		})
	}
}

func TestNewWordEntry(t *testing.T) {
	w, ok := NewWordEntry(" gatto ", "Cat, kitty")
	assert.True(t, ok)
	assert.Equal(t, "gatto", w.Term)
	assert.Equal(t, []string{"cat", "kitty"}, w.Translations)
	assert.Equal(t, "Cat, kitty", w.RawTranslation)

	_, ok = NewWordEntry("", "cat")
	assert.False(t, ok)

	_, ok = NewWordEntry("gatto", " ")
	assert.False(t, ok)
}
