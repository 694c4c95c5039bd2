package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dunkelmpl/textjustification/internal/fixture"
)

// ErrChecksFailed is returned by the check command when any case fails, so
// that the process exits non-zero.
var ErrChecksFailed = errors.New("fixture checks failed")

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FIXTURES.toml...",
		Short: "Run fixture cases and compare the output",
		Long: `Run fixture cases and compare the output.

Each file holds [[case]] tables with name, width, words and either the
expected lines (want) or want_error = "invalid_input". Every case prints a
pass/fail line, followed by a summary.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}

// runCheck runs every fixture file in order and prints a summary.
func (c *CLI) runCheck(ctx context.Context, out io.Writer, paths []string) error {
	logger := loggerFromContext(ctx)

	var passed, failed int
	for _, path := range paths {
		suite, err := fixture.Load(path)
		if err != nil {
			return fmt.Errorf("load fixtures %s: %w", path, err)
		}
		logger.Debug("running fixtures", "file", path, "cases", len(suite.Cases))

		rep := suite.Run()
		for _, o := range rep.Outcomes {
			if o.Passed {
				printSuccess(out, "%s", o.Case.Name)
				continue
			}
			printError(out, "%s", o.Case.Name)
			printDetail(out, "%s", o.Reason)
		}
		passed += rep.Passed
		failed += rep.Failed
	}

	fmt.Fprintf(out, "\n%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrChecksFailed, failed, passed+failed)
	}
	logger.Info("all fixtures passed", "cases", passed)

	return nil
}
