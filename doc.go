// Package textjustification is a small toolkit for laying out text into
// fixed-width, fully justified lines with globally optimal line breaks.
//
// 🚀 What is inside?
//
//	justify/           - the line-break optimizer: cost table, backward DP,
//	                     round-robin interior padding (pure, no I/O)
//	cmd/justify/       - command-line entry point
//	internal/cli/      - cobra commands: run (justify text), check (fixtures)
//	internal/config/   - TOML configuration with validation
//	internal/fixture/  - TOML fixture cases and pass/fail reports
//	examples/          - a runnable newspaper-column scenario
//
// ✨ Why not greedy?
//
//	A greedy wrapper fills every line as far as it can and leaves whatever
//	is left for later. justify minimizes Σ (width − line length)² over the
//	whole paragraph, which trades a slightly looser early line for far fewer
//	rivers of white space further down.
//
// Quick example:
//
//	lines, _ := justify.Justify(strings.Fields("This is an example of text justification"), 16)
//
//	|This    is    an|
//	|example  of text|
//	|justification   |
//
//	go install github.com/dunkelmpl/textjustification/cmd/justify@latest
package textjustification
