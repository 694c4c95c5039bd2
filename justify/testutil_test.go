// Package justify_test provides helpers shared across *_test.go files:
// fixtures from the reference scenarios, invariant checks and a brute-force
// optimum used to cross-check the dynamic program on small inputs.
package justify_test

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Reference scenarios
// -----------------------------------------------------------------------------

var (
	wordsExample = []string{"This", "is", "an", "example", "of", "text", "justification"}

	wordsAlsoGood = []string{"This", "is", "also", "good", "example", "of", "text", "justification"}

	// wordsSeventeen contains a word of exactly 17 runes.
	wordsSeventeen = []string{
		"This", "test", "case", "even", "with", "a", "seventeen(17-chr)", "long", "word",
		"should", "not", "throw", "an", "exception", "since", "maxLen", "here", "is", "17",
	}
)

// seedDet keeps randomized tests reproducible.
const seedDet = int64(20240917)

// -----------------------------------------------------------------------------
// Invariants
// -----------------------------------------------------------------------------

// requireJustified checks the width and content invariants for lines.
func requireJustified(t *testing.T, words, lines []string, width int) {
	t.Helper()
	for i, line := range lines {
		require.Equalf(t, width, utf8.RuneCountInString(line), "line %d %q has wrong width", i, line)
		assert.Falsef(t, strings.HasPrefix(line, " "), "line %d %q starts with a space", i, line)
	}
	var got []string
	for _, line := range lines {
		got = append(got, strings.Fields(line)...)
	}
	if len(words) == 0 {
		assert.Empty(t, got)
		return
	}
	require.Equal(t, words, got, "lines must contain every word once, in order")
}

// chainCost sums (width − unpadded length)² over the spans of chain.
func chainCost(words []string, chain []int, width int) int64 {
	var total int64
	for l := 0; l+1 < len(chain); l++ {
		length := -1
		for _, w := range words[chain[l]:chain[l+1]] {
			length += 1 + utf8.RuneCountInString(w)
		}
		slack := int64(width - length)
		total += slack * slack
	}

	return total
}

// bruteForceCost enumerates every break set (2^(n−1) of them) and returns
// the cheapest feasible total. ok is false when no break set is feasible.
func bruteForceCost(words []string, width int) (best int64, ok bool) {
	n := len(words)
	if n == 0 {
		return 0, true
	}
	for mask := 0; mask < 1<<(n-1); mask++ {
		chain := []int{0}
		for b := 0; b < n-1; b++ {
			if mask&(1<<b) != 0 {
				chain = append(chain, b+1)
			}
		}
		chain = append(chain, n)
		if !chainFits(words, chain, width) {
			continue
		}
		c := chainCost(words, chain, width)
		if !ok || c < best {
			best, ok = c, true
		}
	}

	return best, ok
}

// chainFits reports whether every span of chain fits into width.
func chainFits(words []string, chain []int, width int) bool {
	for l := 0; l+1 < len(chain); l++ {
		length := -1
		for _, w := range words[chain[l]:chain[l+1]] {
			length += 1 + utf8.RuneCountInString(w)
		}
		if length > width {
			return false
		}
	}

	return true
}

// randomWords draws n lowercase words of length 1..maxLen.
func randomWords(rng *rand.Rand, n, maxLen int) []string {
	words := make([]string, n)
	for i := range words {
		b := make([]byte, 1+rng.Intn(maxLen))
		for j := range b {
			b[j] = byte('a' + rng.Intn(26))
		}
		words[i] = string(b)
	}

	return words
}
