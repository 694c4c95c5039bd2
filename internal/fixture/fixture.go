// Package fixture runs justification test cases stored in TOML files and
// compares the produced lines with the expected ones.
//
// File format:
//
//	[[case]]
//	name  = "example"
//	width = 16
//	words = ["This", "is", "an", "example", "of", "text", "justification"]
//	want  = ["This    is    an", "example  of text", "justification   "]
//
//	[[case]]
//	name       = "word too long"
//	width      = 4
//	words      = ["tiny", "enormous"]
//	want_error = "invalid_input"
//
// Words may carry surrounding whitespace; it is trimmed before the case runs
// and blank words are dropped.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/dunkelmpl/textjustification/justify"
)

// ErrorInvalidInput is the want_error value matching justify.ErrInvalidInput.
const ErrorInvalidInput = "invalid_input"

// Case is a single expectation.
type Case struct {
	Name      string   `toml:"name" validate:"required"`
	Width     int      `toml:"width"`
	Words     []string `toml:"words"`
	Want      []string `toml:"want"`
	WantError string   `toml:"want_error" validate:"omitempty,oneof=invalid_input"`
	TieBreak  string   `toml:"tie_break" validate:"omitempty,oneof=longer shorter"`
}

// Suite is the decoded fixture file.
type Suite struct {
	Cases []Case `toml:"case" validate:"dive"`
}

// Outcome is the result of running one Case.
type Outcome struct {
	Case   Case
	Got    []string
	Err    error
	Passed bool
	Reason string // why the case failed; empty when Passed
}

// Report collects all outcomes in file order.
type Report struct {
	Outcomes []Outcome
	Passed   int
	Failed   int
}

// OK reports whether every case passed.
func (r Report) OK() bool { return r.Failed == 0 }

// Load decodes and validates the fixture file at path.
func Load(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes and validates a fixture document.
func Parse(r io.Reader) (*Suite, error) {
	var s Suite
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}
	if err := validator.New().Struct(s); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}

	return &s, nil
}

// Run executes every case in order.
func (s *Suite) Run() Report {
	rep := Report{Outcomes: make([]Outcome, 0, len(s.Cases))}
	for _, c := range s.Cases {
		out := runCase(c)
		if out.Passed {
			rep.Passed++
		} else {
			rep.Failed++
		}
		rep.Outcomes = append(rep.Outcomes, out)
	}

	return rep
}

// runCase justifies the trimmed words of c and compares with the expectation.
func runCase(c Case) Outcome {
	out := Outcome{Case: c}

	tie, err := justify.ParseTieBreak(c.TieBreak)
	if err != nil {
		out.Err = err
		out.Reason = err.Error()
		return out
	}
	out.Got, out.Err = justify.Justify(TrimWords(c.Words), c.Width, justify.WithTieBreak(tie))

	switch {
	case c.WantError == ErrorInvalidInput && errors.Is(out.Err, justify.ErrInvalidInput):
		out.Passed = true
	case c.WantError != "" && out.Err == nil:
		out.Reason = fmt.Sprintf("want error %s, got %d line(s)", c.WantError, len(out.Got))
	case out.Err != nil && c.WantError == "":
		out.Reason = "unexpected error: " + out.Err.Error()
	case out.Err != nil:
		out.Reason = fmt.Sprintf("want error %s, got %v", c.WantError, out.Err)
	case !slices.Equal(out.Got, c.Want):
		out.Reason = diffLines(c.Want, out.Got)
	default:
		out.Passed = true
	}

	return out
}

// TrimWords trims surrounding whitespace from each raw token and drops
// tokens that are empty afterwards.
func TrimWords(raw []string) []string {
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}

	return words
}

// diffLines describes the first difference between want and got.
func diffLines(want, got []string) string {
	for i := 0; i < len(want) && i < len(got); i++ {
		if want[i] != got[i] {
			return fmt.Sprintf("line %d: want %q, got %q", i, want[i], got[i])
		}
	}

	return fmt.Sprintf("want %d line(s), got %d", len(want), len(got))
}
