// Package cli implements the justify command-line interface.
//
// # Commands
//
//   - run:   justify words from arguments, a file or stdin
//   - check: run TOML fixture cases and report pass/fail
//
// # Configuration
//
// Settings come from an optional TOML file (see internal/config), found at
// --config or the XDG default path. Flags given on the command line win.
//
// # Logging
//
// Diagnostics go to stderr through charmbracelet/log; --verbose (-v) enables
// debug output. The logger travels to commands through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dunkelmpl/textjustification/internal/buildinfo"
	"github.com/dunkelmpl/textjustification/internal/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "justify",
		Short: "Justify text into fixed-width lines with optimal breaks",
		Long: `justify lays out words into lines of exactly the requested width.

Line breaks are chosen to minimize the total squared slack of the whole
paragraph rather than greedily, then every line (the last one included) is
padded with interior spaces to the full width.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			return nil
		},
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/justify/config.toml)")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.checkCommand())

	return root
}

// loadConfig resolves the configuration file. An explicit --config must
// exist; the default location is optional.
func (c *CLI) loadConfig() (config.Config, error) {
	if c.configPath != "" {
		return config.Load(c.configPath, false)
	}
	path, err := config.DefaultPath()
	if err != nil {
		c.Logger.Debug("no config directory, using defaults", "err", err)
		return config.Default(), nil
	}
	cfg, err := config.Load(path, true)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
