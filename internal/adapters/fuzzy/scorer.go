// Package fuzzy scores candidate file and folder names against a spoken query.
//
// All scorers return an integer in [0, 100]. Inputs are first normalized:
// lower-cased, every rune that is not a letter or digit replaced by a space,
// and runs of whitespace collapsed. Two normalized strings are compared with
// an insertion/deletion ratio built on the longest common subsequence:
//
//	ratio = 200 * LCS(a, b) / (len(a) + len(b))
//
// The named scorers combine that ratio in different ways:
//
//   - ratio: the plain ratio of the whole strings.
//   - token_sort: the ratio after sorting the words of each string.
//   - token_set: the best ratio among the shared words and each side's
//     shared-plus-remaining words, so extra words on one side cost little.
//   - weighted: the maximum of the above, with partial (substring) variants
//     when one string is much longer than the other. This is the default and
//     suits queries like "budget" against "Budget 2024 final.xlsx".
//   - jaro_winkler: Jaro-Winkler similarity scaled to 100.
package fuzzy

import (
	"math"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/antzucaro/matchr"
	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
	"go.trai.ch/zerr"
)

// Func scores two raw strings.
type Func func(a, b string) int

// Scorer implements ports.Scorer with one named scoring function.
// It is read-only after construction and safe for concurrent use.
type Scorer struct {
	name string
	fn   Func
}

var _ ports.Scorer = (*Scorer)(nil)

var scorers = map[string]Func{
	domain.ScorerWeighted:    Weighted,
	domain.ScorerRatio:       Ratio,
	domain.ScorerTokenSort:   TokenSortRatio,
	domain.ScorerTokenSet:    TokenSetRatio,
	domain.ScorerJaroWinkler: JaroWinkler,
}

// New returns the scorer registered under name.
func New(name string) (*Scorer, error) {
	fn, ok := scorers[name]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownScorer, ""), "scorer", name)
	}
	return &Scorer{name: name, fn: fn}, nil
}

// Name returns the configured scorer name.
func (s *Scorer) Name() string {
	return s.name
}

// Score rates candidate against query.
func (s *Scorer) Score(query, candidate string) int {
	return s.fn(query, candidate)
}

// Ratio compares the normalized strings as a whole.
func Ratio(a, b string) int {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return 0
	}
	return round(ratio(a, b))
}

// TokenSortRatio compares the normalized strings after sorting their words.
func TokenSortRatio(a, b string) int {
	a, b = sortTokens(normalize(a)), sortTokens(normalize(b))
	if a == "" || b == "" {
		return 0
	}
	return round(ratio(a, b))
}

// TokenSetRatio compares shared words against each side's full word set.
func TokenSetRatio(a, b string) int {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return 0
	}
	return round(tokenSet(a, b, ratio))
}

// JaroWinkler scales the Jaro-Winkler similarity of the normalized strings to 100.
func JaroWinkler(a, b string) int {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return 0
	}
	return round(matchr.JaroWinkler(a, b, false) * 100)
}

// Weighted takes the best of the whole, sorted, set and partial comparisons,
// discounting the indirect ones so a plain match still ranks first.
func Weighted(a, b string) int {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return 0
	}

	const unbaseScale = 0.95
	partialScale := 0.90

	base := ratio(a, b)

	la, lb := float64(utf8.RuneCountInString(a)), float64(utf8.RuneCountInString(b))
	lenRatio := math.Max(la, lb) / math.Min(la, lb)

	if lenRatio < 1.5 {
		sorted := ratio(sortTokens(a), sortTokens(b)) * unbaseScale
		set := tokenSet(a, b, ratio) * unbaseScale
		return round(max(base, sorted, set))
	}

	if lenRatio > 8 {
		partialScale = 0.6
	}

	partial := partialRatio(a, b) * partialScale
	partialSorted := partialRatio(sortTokens(a), sortTokens(b)) * unbaseScale * partialScale
	partialSet := tokenSet(a, b, partialRatio) * unbaseScale * partialScale
	return round(max(base, partial, partialSorted, partialSet))
}

// ratio is the LCS based similarity of two non-empty strings in [0, 100].
func ratio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 0
	}
	return 200 * float64(matchr.LongestCommonSubsequence(a, b)) / float64(total)
}

// partialRatio is the best ratio of the shorter string against every
// equally long window of the longer one.
func partialRatio(a, b string) float64 {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}

	s := string(short)
	best := 0.0
	for i := 0; i+len(short) <= len(long); i++ {
		r := ratio(s, string(long[i:i+len(short)]))
		if r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

// tokenSet scores the intersection of the word sets against each side's
// intersection-plus-difference using cmp.
func tokenSet(a, b string, cmp func(a, b string) float64) float64 {
	wa, wb := wordSet(a), wordSet(b)

	var common, onlyA, onlyB []string
	for w := range wa {
		if _, ok := wb[w]; ok {
			common = append(common, w)
		} else {
			onlyA = append(onlyA, w)
		}
	}
	for w := range wb {
		if _, ok := wa[w]; !ok {
			onlyB = append(onlyB, w)
		}
	}
	slices.Sort(common)
	slices.Sort(onlyA)
	slices.Sort(onlyB)

	sect := strings.Join(common, " ")
	withA := strings.TrimSpace(sect + " " + strings.Join(onlyA, " "))
	withB := strings.TrimSpace(sect + " " + strings.Join(onlyB, " "))

	best := 0.0
	for _, pair := range [][2]string{{sect, withA}, {sect, withB}, {withA, withB}} {
		if pair[0] == "" || pair[1] == "" {
			continue
		}
		best = max(best, cmp(pair[0], pair[1]))
	}
	return best
}

func wordSet(s string) map[string]struct{} {
	words := strings.Fields(s)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func sortTokens(s string) string {
	words := strings.Fields(s)
	slices.Sort(words)
	return strings.Join(words, " ")
}

// normalize lower-cases s and keeps letters and digits separated by single spaces.
func normalize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

func round(f float64) int {
	return int(math.RoundToEven(f))
}
