package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_Identity(t *testing.T) {
	for _, s := range []string{"", "a", "municipal rollover", "How does Municipal rollover work?"} {
		assert.Equal(t, 1.0, Similarity(s, s), "similarity(%q, %q)", s, s)
	}
}

func TestSimilarity_EmptyStrings(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("", "abc"))
	assert.Equal(t, 0.0, Similarity("abc", ""))
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"premium tax", "premium"},
		{"allocator", "calendar"},
		{"", "rollover"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), "pair %v", p)
	}
}

func TestSimilarity_Range(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"a", "zzzzzzzzzz"},
		{"municipal", "municipal tax"},
		{"x", ""},
	}
	for _, p := range pairs {
		sim := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, sim, 0.0, "pair %v", p)
		assert.LessOrEqual(t, sim, 1.0, "pair %v", p)
	}
}

func TestSimilarity_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Municipal", "municipal"))
	assert.Equal(t, 1.0, Similarity("FORMSPLUS", "formsplus"))
}

func TestSimilarity_KnownDistance(t *testing.T) {
	// levenshtein("kitten", "sitting") = 3, max length 7
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 1e-9)
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"rollover", "rolover", 1},
	}
	for _, tc := range cases {
		got := levenshtein([]rune(tc.a), []rune(tc.b))
		assert.Equal(t, tc.want, got, "levenshtein(%q, %q)", tc.a, tc.b)
	}
}
