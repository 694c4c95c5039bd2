package justify_test

import (
	"errors"
	"fmt"

	"github.com/dunkelmpl/textjustification/justify"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleJustify
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Seven words into a 16-rune column. A greedy wrapper would put
//	"example of text" after "This is an" as well, but the DP weighs the
//	whole paragraph at once.
//
// Complexity: O(n·L) time, O(n·L) memory
func ExampleJustify() {
	words := []string{"This", "is", "an", "example", "of", "text", "justification"}

	lines, err := justify.Justify(words, 16)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, line := range lines {
		fmt.Printf("|%s|\n", line)
	}
	// Output:
	// |This    is    an|
	// |example  of text|
	// |justification   |
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Same column width, one more word. Solve also reports where the lines
//	break and the total squared slack 4² + 4² + 9² + 3².
func ExampleSolve() {
	words := []string{"This", "is", "also", "good", "example", "of", "text", "justification"}

	res, err := justify.Solve(words, 16)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("breaks=%v cost=%d\n", res.Breaks, res.Cost)
	for _, line := range res.Lines {
		fmt.Printf("|%s|\n", line)
	}
	// Output:
	// breaks=[0 3 5 7 8] cost=122
	// |This   is   also|
	// |good     example|
	// |of          text|
	// |justification   |
}

// ExampleWidthError shows how to recover the offending width.
func ExampleWidthError() {
	_, err := justify.Justify([]string{"tiny", "enormousword"}, 8)

	var werr *justify.WidthError
	if errors.As(err, &werr) {
		fmt.Printf("width %d too small for %q\n", werr.Width, werr.Word)
	}
	fmt.Println(errors.Is(err, justify.ErrInvalidInput))
	// Output:
	// width 8 too small for "enormousword"
	// true
}

// ExampleOptimize runs the three stages by hand.
func ExampleOptimize() {
	words := []string{"aaa", "bb", "cc", "ddddd"}

	tbl, _ := justify.BuildCostTable(words, 6)
	plan, _ := justify.Optimize(tbl)
	lines, _ := justify.Render(words, plan.Chain(), 6)

	fmt.Println(plan.Chain(), plan.Cost())
	for _, line := range lines {
		fmt.Printf("|%s|\n", line)
	}
	// Output:
	// [0 1 3 4] 11
	// |aaa   |
	// |bb  cc|
	// |ddddd |
}
