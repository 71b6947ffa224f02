// Command classlens analyzes UML class diagrams: it detects design-pattern
// matches, finds dependency cycles, and computes maintainability metrics.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	debug bool

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "classlens",
	Short: "Analyze UML class diagrams for patterns, cycles, and metrics",
	Long: `classlens reads a class-diagram XML document and reports on its structure:

  classlens patterns  detects Gang-of-Four design-pattern matches
  classlens cycles    finds circular class dependencies
  classlens info      computes maintainability metrics
  classlens lsp       runs a diagnostics-only language server

Every subcommand accepts the diagram as a positional argument and writes
plain text to stdout unless -o names an output file, in which case the
file's extension selects the format: ".json" for JSON, anything else for
the same text format used on stdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if debug {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print full error detail and enable debug logging")
}

// Execute runs the root command, converting any returned error into stderr
// output and a process exit code: 0 on success, 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitWithError(err)
	}
}

func exitWithError(err error) {
	if debug {
		fmt.Fprintf(os.Stderr, "classlens: %+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "classlens: %v\n", err)
	}
	os.Exit(1)
}
