package justify

import "unicode/utf8"

// wordLen is the length of a word in logical units (runes).
func wordLen(w string) int {
	return utf8.RuneCountInString(w)
}

// validateWords checks that every word fits on a line of its own.
//
// The scan always covers the whole input, so the reported error does not
// depend on the order in which the table is later filled.
//
// Complexity: O(n) time, O(n) extra space for the lengths it returns.
func validateWords(words []string, width int) ([]int, error) {
	var (
		lengths = make([]int, len(words))
		werr    *WidthError
		i       int
	)
	for i = range words {
		lengths[i] = wordLen(words[i])
		if lengths[i] <= width {
			continue
		}
		if werr == nil {
			werr = &WidthError{Width: width, Index: i, Word: words[i]}
		}
		werr.Count++
	}
	if werr != nil {
		return nil, werr
	}

	return lengths, nil
}
