package entities

import (
	"regexp"
	"strings"
)

// translationSeparator splits a raw translation field into alternatives:
// commas, semicolons, en/em dashes, and hyphens standing between whitespace.
var translationSeparator = regexp.MustCompile(`[,;–—]|\s-\s`)

// WordEntry is a vocabulary item with its acceptable answers.
type WordEntry struct {
	Term           string   // foreign-language word shown to the learner
	Translations   []string // normalized alternatives, first one is canonical
	RawTranslation string   // translation field as written in the source
}

// NewWordEntry builds an entry from a source row. ok is false when the term
// is blank or the translation yields no alternatives.
func NewWordEntry(term, rawTranslation string) (WordEntry, bool) {
	term = strings.TrimSpace(term)
	translations := ParseTranslations(rawTranslation)
	if term == "" || len(translations) == 0 {
		return WordEntry{}, false
	}

	return WordEntry{
		Term:           term,
		Translations:   translations,
		RawTranslation: strings.TrimSpace(rawTranslation),
	}, true
}

// ParseTranslations splits raw into trimmed, lower-cased, non-empty alternatives
// keeping their order and dropping duplicates.
func ParseTranslations(raw string) []string {
	parts := translationSeparator.Split(raw, -1)
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = Normalize(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Normalize trims and lower-cases an answer or translation.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
