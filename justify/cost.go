package justify

// CostTable holds the padding cost of every feasible line span.
//
// Only spans start ≤ end are meaningful. Row i stores costs for end indices
// i, i+1, …, i+len(row)−1; every end index past the row is infeasible, since
// adding words to a line never makes it shorter. Infeasibility is therefore
// explicit and never encoded as a numeric sentinel.
type CostTable struct {
	width int
	rows  [][]int64
}

// BuildCostTable computes cost(i, j) = (width − L(i, j))² for every span of
// words whose single-space-joined length L(i, j) does not exceed width.
//
// Algorithm:
//  1. Validate every word (ErrInvalidInput via *WidthError if any is longer
//     than width). Nothing is built when validation fails.
//  2. For each start i, extend the span one word at a time, adding the word
//     length plus one separator, and record the squared slack.
//  3. Stop extending at the first overflow; all longer spans overflow too.
//
// Complexity: O(n·L) time and memory, L = most words that fit on one line.
func BuildCostTable(words []string, width int) (*CostTable, error) {
	lengths, err := validateWords(words, width)
	if err != nil {
		return nil, err
	}

	n := len(words)
	t := &CostTable{width: width, rows: make([][]int64, n)}
	var i, k, length, slack int
	for i = 0; i < n; i++ {
		length = -1 // no separator before the first word
		for k = i; k < n; k++ {
			length += 1 + lengths[k]
			if length > width {
				break
			}
			slack = width - length
			t.rows[i] = append(t.rows[i], int64(slack)*int64(slack))
		}
	}

	return t, nil
}

// Len returns the number of words the table was built for.
func (t *CostTable) Len() int { return len(t.rows) }

// Width returns the line width the table was built for.
func (t *CostTable) Width() int { return t.width }

// At returns the cost of a line holding words[i..j] (inclusive).
// ok is false when the span does not fit or the indices are out of range.
func (t *CostTable) At(i, j int) (cost int64, ok bool) {
	if i < 0 || i >= len(t.rows) || j < i {
		return 0, false
	}
	row := t.rows[i]
	if j-i >= len(row) {
		return 0, false
	}

	return row[j-i], true
}

// MaxEnd returns the largest j with At(i, j) feasible, or i−1 if none.
func (t *CostTable) MaxEnd(i int) int {
	if i < 0 || i >= len(t.rows) {
		return i - 1
	}

	return i + len(t.rows[i]) - 1
}
