// Package cmd implements the campus CLI commands.
//
// The root command carries the flags shared by every subcommand: the
// project directory holding campus.yaml, and logging verbosity and
// destination.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/campusui/campus/cmd/campus/internal/config"
	"github.com/campusui/campus/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type rootOptions struct {
	dir     string
	verbose bool
	logFile string
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "campus",
		Short: "Menus and disclosures for the campus admin UI",
		Long: `campus drives the admin header outside a browser: run it interactively in
the terminal, replay presses and keys to inspect the resulting document, or
draw where a menu panel lands for a given side and alignment.

Settings are read from campus.yaml next to the enclosing go.mod.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dir, "dir", "", "project directory (default: enclosing go.mod)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details and stack traces")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "append logs to this file")

	root.AddCommand(
		newShowcaseCommand(opts),
		newTreeCommand(opts),
		newSnapshotCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func (o *rootOptions) load() (*config.Resolved, error) {
	dir := o.dir
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to locate project: %w", err)
		}
		dir = root
	}
	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// setupLogging installs a text slog logger as the default logger and as
// the framework error handler. Logs go to --log-file when set, otherwise to
// fallback. The returned func restores the previous state.
func (o *rootOptions) setupLogging(fallback io.Writer, verbose bool) (*slog.Logger, func(), error) {
	out := fallback
	var file *os.File
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		file, out = f, f
	}

	level := slog.LevelInfo
	if o.verbose || verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))

	prevLogger := slog.Default()
	slog.SetDefault(logger)
	prevHandler := errors.SetHandler(&errors.SlogHandler{Logger: logger})

	restore := func() {
		errors.SetHandler(prevHandler)
		slog.SetDefault(prevLogger)
		if file != nil {
			file.Close()
		}
	}
	return logger, restore, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "campus version %s (built %s)\n", Version, BuildTime)
		},
	}
}
