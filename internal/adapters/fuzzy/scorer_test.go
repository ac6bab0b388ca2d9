package fuzzy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.stonic.dev/stonic/internal/adapters/fuzzy"
	"go.stonic.dev/stonic/internal/core/domain"
)

func TestScorers(t *testing.T) {
	tests := []struct {
		name string
		fn   fuzzy.Func
		a, b string
		want int
	}{
		{name: "ratio identical ignoring case", fn: fuzzy.Ratio, a: "ProjectAlpha", b: "projectalpha", want: 100},
		{name: "ratio one substitution", fn: fuzzy.Ratio, a: "abc", b: "abd", want: 67},
		{name: "ratio empty", fn: fuzzy.Ratio, a: "", b: "abc", want: 0},
		{name: "ratio punctuation only", fn: fuzzy.Ratio, a: "!!!", b: "abc", want: 0},
		{name: "token sort reordered", fn: fuzzy.TokenSortRatio, a: "alpha project", b: "Project-Alpha", want: 100},
		{name: "token set extra words", fn: fuzzy.TokenSetRatio, a: "project alpha", b: "alpha project final", want: 100},
		{name: "token set disjoint", fn: fuzzy.TokenSetRatio, a: "xyz", b: "abc", want: 0},
		{name: "weighted identical", fn: fuzzy.Weighted, a: "ProjectAlpha", b: "projectalpha", want: 100},
		{name: "weighted substring of longer name", fn: fuzzy.Weighted, a: "alpha", b: "project alpha", want: 90},
		{name: "weighted disjoint", fn: fuzzy.Weighted, a: "xyz", b: "abc", want: 0},
		{name: "jaro winkler identical", fn: fuzzy.JaroWinkler, a: "alpha", b: "Alpha", want: 100},
		{name: "jaro winkler disjoint", fn: fuzzy.JaroWinkler, a: "abc", b: "xyz", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.a, tt.b))
		})
	}
}

func TestScorers_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"budget", "Budget 2024 final.xlsx"},
		{"holiday photos", "Photos from holiday"},
		{"resume", "résumé.pdf"},
	}
	fns := map[string]fuzzy.Func{
		"ratio":      fuzzy.Ratio,
		"token_sort": fuzzy.TokenSortRatio,
		"token_set":  fuzzy.TokenSetRatio,
		"weighted":   fuzzy.Weighted,
	}

	for name, fn := range fns {
		for _, p := range pairs {
			assert.Equal(t, fn(p[0], p[1]), fn(p[1], p[0]), "%s(%q, %q)", name, p[0], p[1])
		}
	}
}

func TestWeighted_Ranking(t *testing.T) {
	best := fuzzy.Weighted("budget", "Budget 2024 final.xlsx")
	assert.Greater(t, best, fuzzy.Weighted("budget", "gadget"))
	assert.Greater(t, best, fuzzy.Weighted("budget", "bud.txt"))
	assert.Greater(t, best, domain.DefaultThreshold)
}

func TestNew(t *testing.T) {
	for _, name := range []string{
		domain.ScorerWeighted,
		domain.ScorerRatio,
		domain.ScorerTokenSort,
		domain.ScorerTokenSet,
		domain.ScorerJaroWinkler,
	} {
		s, err := fuzzy.New(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, s.Name())
		assert.Equal(t, 100, s.Score("Project Alpha", "project alpha"), name)
	}

	_, err := fuzzy.New("soundex")
	require.ErrorIs(t, err, domain.ErrUnknownScorer)
}
