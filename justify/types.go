// Package justify defines core types, errors and options for the
// justification pipeline.
package justify

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the justify pipeline.
var (
	// ErrInvalidInput indicates that the line width cannot hold at least one
	// word on a line of its own. Returned wrapped in *WidthError.
	ErrInvalidInput = errors.New("justify: line width too small for word")

	// ErrNoBreak indicates that the optimizer met a start index with no
	// feasible line. It cannot happen for a table built by BuildCostTable.
	ErrNoBreak = errors.New("justify: no feasible line break")

	// ErrBadChain indicates that Render received a break chain that does not
	// cover the words in order, or a span that does not fit the width.
	ErrBadChain = errors.New("justify: malformed break chain")
)

// WidthError reports a line width that is too small for some word.
//
// Index and Word name the first offending word; Count is the number of words
// that exceed Width. errors.Is(err, ErrInvalidInput) holds for every WidthError.
type WidthError struct {
	Width int    // configured line width
	Index int    // position of the first word longer than Width
	Word  string // the word at Index
	Count int    // how many words are longer than Width
}

// Error implements the error interface.
func (e *WidthError) Error() string {
	return fmt.Sprintf("%s: width=%d, word %d %q has length %d (%d word(s) too long)",
		ErrInvalidInput, e.Width, e.Index, e.Word, wordLen(e.Word), e.Count)
}

// Unwrap makes errors.Is(err, ErrInvalidInput) succeed.
func (e *WidthError) Unwrap() error { return ErrInvalidInput }

// TieBreak selects which break wins when two candidates have equal total cost.
//
//   - TieLonger  - keep the first minimum found while scanning end indices in
//     descending order, i.e. the line that holds more words. Default.
//   - TieShorter - let later (smaller) end indices replace an equal minimum,
//     i.e. the line that holds fewer words. Same total cost, different layout.
type TieBreak int

const (
	// TieLonger prefers the longer line on equal cost (default).
	TieLonger TieBreak = iota

	// TieShorter prefers the shorter line on equal cost.
	TieShorter
)

// String returns the lowercase name used in configuration files.
func (t TieBreak) String() string {
	switch t {
	case TieLonger:
		return "longer"
	case TieShorter:
		return "shorter"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// ParseTieBreak maps "longer"/"shorter" back to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "", "longer":
		return TieLonger, nil
	case "shorter":
		return TieShorter, nil
	default:
		return TieLonger, fmt.Errorf("justify: unknown tie-break %q", s)
	}
}

// Options configures the optimizer.
//
// TieBreak – how equal-cost candidates are resolved. Default TieLonger.
type Options struct {
	TieBreak TieBreak
}

// Option represents a functional option for configuring Justify.
type Option func(*Options)

// WithTieBreak sets the tie-break policy used by Optimize.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}

// DefaultOptions returns the reference configuration.
//
// Defaults:
//   - TieBreak: TieLonger.
func DefaultOptions() Options {
	return Options{TieBreak: TieLonger}
}

// Result is the full outcome of a successful Solve.
type Result struct {
	// Lines are the justified lines, each exactly the configured width.
	Lines []string

	// Breaks is the break chain: Breaks[0] == 0, Breaks[len-1] == len(words),
	// and line l spans words[Breaks[l]:Breaks[l+1]]. Empty for zero words.
	Breaks []int

	// Cost is the total squared slack Σ (width − unpadded length)².
	Cost int64
}
