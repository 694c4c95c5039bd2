package justify

// Justify breaks words into lines of exactly width runes with minimum total
// squared slack. See Solve for the full result and the edge cases.
//
// Example:
//
//	lines, err := Justify([]string{"This", "is", "an", "example"}, 8)
func Justify(words []string, width int, opts ...Option) ([]string, error) {
	res, err := Solve(words, width, opts...)
	if err != nil {
		return nil, err
	}

	return res.Lines, nil
}

// Solve runs the whole pipeline and returns lines, break chain and cost.
//
// Preconditions and validation:
//  1. Every word must be at most width runes long (ErrInvalidInput, as
//     *WidthError). All words are checked before any output is produced.
//
// Edge cases:
//   - No words: empty Lines and Breaks, cost 0. Nothing is validated.
//   - One word: rendered directly, padded on the right; the optimizer is not run.
//
// Words are only read; the caller keeps ownership of the slice.
func Solve(words []string, width int, opts ...Option) (Result, error) {
	n := len(words)
	if n == 0 {
		return Result{Lines: []string{}, Breaks: []int{}}, nil
	}

	if n == 1 {
		if _, err := validateWords(words, width); err != nil {
			return Result{}, err
		}
		line, err := padLine(words, width)
		if err != nil {
			return Result{}, err
		}
		slack := int64(width - wordLen(words[0]))

		return Result{Lines: []string{line}, Breaks: []int{0, 1}, Cost: slack * slack}, nil
	}

	t, err := BuildCostTable(words, width)
	if err != nil {
		return Result{}, err
	}
	plan, err := Optimize(t, opts...)
	if err != nil {
		return Result{}, err
	}
	chain := plan.Chain()
	lines, err := Render(words, chain, width)
	if err != nil {
		return Result{}, err
	}

	return Result{Lines: lines, Breaks: chain, Cost: plan.Cost()}, nil
}
