// Package justify lays out words into fixed-width, fully justified lines
// with globally optimal line breaks.
//
// 🚀 What does it do?
//
//	Given an ordered list of words and a line width W, justify chooses where
//	to break lines so that the total "raggedness" of the paragraph is as small
//	as possible, and then stretches every line to exactly W runes by inserting
//	extra spaces between words.
//
//	Unlike a greedy wrapper (fill each line as far as possible), the break
//	points are chosen jointly: a slightly emptier first line is accepted when
//	it lets later lines fit more evenly.
//
// ✨ Pipeline:
//
//	words ─► BuildCostTable ─► Optimize ─► Render ─► lines
//
//   - BuildCostTable - cost(i, j) = (W − len(words[i..j]))² for every span that
//     fits on one line; spans that do not fit are marked infeasible.
//   - Optimize - backward dynamic program:
//     Best[n] = 0
//     Best[i] = min over k { cost(i, k) + Best[k+1] }
//     with a fast path when words[i..n−1] already fit on one line.
//   - Render - joins each span with single spaces and hands out the remaining
//     W − base spaces one at a time, round robin from the leftmost gap.
//     A single-word line pads on the right.
//
// The same rule applies to every line, the last one included.
//
// ⚙️ Usage:
//
//	import "github.com/dunkelmpl/textjustification/justify"
//
//	lines, err := justify.Justify(
//	    []string{"This", "is", "an", "example", "of", "text", "justification"},
//	    16,
//	)
//	if errors.Is(err, justify.ErrInvalidInput) {
//	    // some word is longer than the width
//	}
//	// lines == ["This    is    an", "example  of text", "justification   "]
//
// Errors (sentinel):
//
//   - ErrInvalidInput - at least one word is longer than the width
//     (returned as *WidthError, which carries the width).
//   - ErrNoBreak      - the optimizer found a start index with no feasible line.
//   - ErrBadChain     - Render received a malformed break chain.
//
// Complexity:
//
//   - Time:   O(n²) worst case, O(n·L) where L is the most words per line.
//   - Memory: O(n·L) for the triangular cost table, O(n) for the plan.
//
// Every call allocates its own table and plan, so Justify is safe for
// concurrent use without synchronization.
package justify
