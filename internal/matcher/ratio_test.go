package matcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "both empty", a: "", b: "", want: 1},
		{name: "one empty", a: "", b: "cat", want: 0},
		{name: "identical", a: "cane", b: "cane", want: 1},
		{name: "no common runes", a: "abc", b: "xyz", want: 0},
		{name: "one substitution short word", a: "cet", b: "cat", want: 4.0 / 6},
		{name: "one substitution five letters", a: "gatti", b: "gatto", want: 8.0 / 10},
		{name: "shifted window", a: "abcd", b: "bcde", want: 6.0 / 8},
		{name: "split blocks", a: "abxcd", b: "abcd", want: 8.0 / 9},
		{name: "extra letter", a: "kittey", b: "kitty", want: 10.0 / 11},
		{name: "runes not bytes", a: "perché", b: "perche", want: 10.0 / 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestRatioLongSequencesWithPopularRunes(t *testing.T) {
	s := strings.Repeat("ab", 150)

	assert.InDelta(t, 1.0, Ratio(s, s), 1e-9)
	assert.InDelta(t, 1.0, Ratio(strings.Repeat("a", 250), strings.Repeat("a", 250)), 1e-9)
}

func TestRatioPrefersEarliestLongestBlock(t *testing.T) {
	m := newSequenceMatcher([]rune("xabyab"), []rune("ab"))

	i, j, k := m.longestMatch(0, 6, 0, 2)
	assert.Equal(t, 1, i)
	assert.Equal(t, 0, j)
	assert.Equal(t, 2, k)
}
