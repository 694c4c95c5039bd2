package justify

import (
	"fmt"
	"strings"
)

// Render turns a break chain into fixed-width lines.
//
// chain must start at 0, increase strictly and end at len(words); line l
// holds words[chain[l]:chain[l+1]]. Each line is joined with single spaces
// and then stretched to width by padLine. Malformed chains and spans wider
// than width yield ErrBadChain.
//
// Complexity: O(n + lines·width) time.
func Render(words []string, chain []int, width int) ([]string, error) {
	n := len(words)
	if len(chain) == 0 || chain[0] != 0 || chain[len(chain)-1] != n {
		return nil, fmt.Errorf("%w: chain %v does not span %d words", ErrBadChain, chain, n)
	}

	lines := make([]string, 0, len(chain)-1)
	var (
		l          int
		start, end int
		line       string
		err        error
	)
	for l = 0; l+1 < len(chain); l++ {
		start, end = chain[l], chain[l+1]
		if end <= start || end > n {
			return nil, fmt.Errorf("%w: bad span [%d,%d) at line %d", ErrBadChain, start, end, l)
		}
		if line, err = padLine(words[start:end], width); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// padLine joins words with one space and hands out the remaining
// width − base spaces one at a time over the gaps, round robin from gap 0.
// A single word has one trailing gap.
func padLine(words []string, width int) (string, error) {
	gaps := len(words) - 1
	base := gaps
	var i int
	for i = range words {
		base += wordLen(words[i])
	}
	if base > width {
		return "", fmt.Errorf("%w: line of length %d exceeds width %d", ErrBadChain, base, width)
	}
	if gaps == 0 {
		gaps = 1
	}

	// pad[g] counts the spaces after words[g], separator included.
	pad := make([]int, gaps)
	for i = 0; i < len(words)-1; i++ {
		pad[i] = 1
	}
	var g int
	for extra := width - base; extra > 0; extra-- {
		pad[g]++
		g = (g + 1) % gaps
	}

	var sb strings.Builder
	sb.Grow(width)
	for i = range words {
		sb.WriteString(words[i])
		if i < gaps {
			sb.WriteString(strings.Repeat(" ", pad[i]))
		}
	}

	return sb.String(), nil
}
