package justify

import "fmt"

// Plan is the optimizer's output.
//
//   - Next[i] - exclusive end of the best first line when the text starts at
//     word i, i.e. the first word of the following line (n for the last line).
//   - Best[i] - minimum total cost of justifying words[i..n−1].
//     Best has n+1 entries; Best[n] == 0 is the explicit empty-suffix boundary.
type Plan struct {
	Next []int
	Best []int64
}

// Optimize runs the backward dynamic program over t and returns the
// minimum-cost Plan for every start index.
//
// Algorithm Outline:
//  1. Best[n] = 0.
//  2. For i = n−1 down to 0:
//     a. If words[i..n−1] fit on one line, that line is optimal:
//     Best[i] = cost(i, n−1), Next[i] = n.
//     b. Otherwise, for k = MaxEnd(i) down to i:
//     total = cost(i, k) + Best[k+1]
//     keep the minimum (ties per Options.TieBreak), Next[i] = k+1.
//  3. No candidate for some i ⇒ ErrNoBreak.
//
// With TieLonger a candidate replaces the current one only when strictly
// cheaper, so among equal totals the first one met (largest k) is kept.
//
// Complexity: O(n·L) time, O(n) memory on top of the table.
func Optimize(t *CostTable, opts ...Option) (*Plan, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	n := t.Len()
	p := &Plan{
		Next: make([]int, n+1),
		Best: make([]int64, n+1),
	}
	p.Next[n] = n
	p.Best[n] = 0

	var (
		i, k      int
		cost      int64
		total     int64
		found, ok bool
	)
	for i = n - 1; i >= 0; i-- {
		// Fast path: the rest of the text fits on this line.
		if cost, ok = t.At(i, n-1); ok {
			p.Best[i] = cost
			p.Next[i] = n
			continue
		}

		found = false
		for k = t.MaxEnd(i); k >= i; k-- {
			if cost, ok = t.At(i, k); !ok {
				continue
			}
			// Best[k+1] is final: every later start either found a line
			// or aborted the sweep with ErrNoBreak.
			total = cost + p.Best[k+1]
			if !found || better(total, p.Best[i], cfg.TieBreak) {
				p.Best[i] = total
				p.Next[i] = k + 1
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: start word %d", ErrNoBreak, i)
		}
	}

	return p, nil
}

// better reports whether candidate replaces current under tie.
func better(candidate, current int64, tie TieBreak) bool {
	if tie == TieShorter {
		return candidate <= current
	}

	return candidate < current
}

// Chain follows Next from word 0 and returns the break positions,
// starting with 0 and ending with n. For n == 0 it returns [0].
func (p *Plan) Chain() []int {
	n := len(p.Next) - 1
	chain := []int{0}
	for i := 0; i < n; {
		i = p.Next[i]
		chain = append(chain, i)
	}

	return chain
}

// Cost returns the optimal total cost for the whole text.
func (p *Plan) Cost() int64 { return p.Best[0] }
