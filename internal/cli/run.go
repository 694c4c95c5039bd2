package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dunkelmpl/textjustification/internal/config"
	"github.com/dunkelmpl/textjustification/justify"
)

// runFlags are the run command's flags; zero values mean "not given".
type runFlags struct {
	width    int
	file     string
	tieBreak string
	workers  int
	border   bool
	cost     bool
}

// runCommand creates the run command.
func (c *CLI) runCommand() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run [words...]",
		Short: "Justify words into fixed-width lines",
		Long: `Justify words into fixed-width lines.

Words are taken from the arguments, else from --file, else from stdin.
Blank lines in file or stdin input separate paragraphs; each paragraph is
justified on its own and paragraphs are printed in input order.`,
		Example: `  justify run --width 16 This is an example of text justification
  justify run -w 72 --file chapter.txt --border`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			applyRunFlags(cmd, &cfg, f)
			if err = cfg.Validate(); err != nil {
				return fmt.Errorf("invalid settings: %w", err)
			}
			return c.runJustify(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, cfg, f)
		},
	}

	cmd.Flags().IntVarP(&f.width, "width", "w", 0, fmt.Sprintf("line width in runes (default %d)", config.DefaultWidth))
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "read text from file instead of stdin")
	cmd.Flags().StringVar(&f.tieBreak, "tie-break", "", "equal-cost breaks: longer (default), shorter")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "paragraphs justified in parallel (default: CPU count)")
	cmd.Flags().BoolVar(&f.border, "border", false, "frame each paragraph")
	cmd.Flags().BoolVar(&f.cost, "cost", false, "print breaks and total cost after each paragraph")

	return cmd
}

// applyRunFlags overrides cfg with the flags that were set explicitly.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config, f runFlags) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = f.width
	}
	if flags.Changed("tie-break") {
		cfg.TieBreak = f.tieBreak
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if flags.Changed("border") {
		cfg.Border = f.border
	}
}

// runJustify reads the input, justifies every paragraph and writes the lines.
func (c *CLI) runJustify(ctx context.Context, stdin io.Reader, out io.Writer, args []string, cfg config.Config, f runFlags) error {
	logger := loggerFromContext(ctx)

	paragraphs, err := collectParagraphs(stdin, args, f.file)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	logger.Debug("justifying", "paragraphs", len(paragraphs), "width", cfg.Width, "tie_break", cfg.TieBreak, "workers", cfg.Workers)

	results, err := justifyAll(ctx, paragraphs, cfg.Width, cfg.Workers, opts...)
	if err != nil {
		var werr *justify.WidthError
		if errors.As(err, &werr) {
			logger.Warn("width too small for word", "width", werr.Width, "word", werr.Word, "too_long", werr.Count)
		}
		return fmt.Errorf("justify: %w", err)
	}

	for i, res := range results {
		logger.Debug("paragraph justified", "index", i+1, "words", len(paragraphs[i]), "lines", len(res.Lines), "cost", res.Cost)
		if i > 0 {
			fmt.Fprintln(out)
		}
		if cfg.Border {
			fmt.Fprintln(out, frame(res.Lines))
		} else if len(res.Lines) > 0 {
			fmt.Fprintln(out, strings.Join(res.Lines, "\n"))
		}
		if f.cost {
			printDetail(out, "breaks=%v cost=%d", res.Breaks, res.Cost)
		}
	}
	logger.Info("done", "paragraphs", len(results), "width", cfg.Width)

	return nil
}

// collectParagraphs picks the input source: args, then file, then stdin.
func collectParagraphs(stdin io.Reader, args []string, file string) ([][]string, error) {
	if len(args) > 0 {
		if words := wordsFromArgs(args); len(words) > 0 {
			return [][]string{words}, nil
		}
		return nil, nil
	}

	r := stdin
	if file != "" {
		fh, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		defer fh.Close()
		r = fh
	}
	paragraphs, err := readParagraphs(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return paragraphs, nil
}
