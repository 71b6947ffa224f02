package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/classlens/classlens/lsp"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run a diagnostics-only language server over stdio",
	Long: `lsp runs a Language Server Protocol server that publishes reader
diagnostics for class-diagram XML documents as an editor opens and edits
them. It offers no completion, hover, or go-to-definition support.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLSP(logger)
	},
}

func init() {
	rootCmd.AddCommand(lspCmd)
}

// isCleanShutdown reports whether err represents a normal client disconnect
// rather than a real failure.
func isCleanShutdown(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "EPIPE")
}

func runLSP(logger *slog.Logger) error {
	server := lsp.NewServer(logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() { errCh <- server.RunStdio() }()

	logger.Info("running on stdio")

	select {
	case err := <-errCh:
		if err != nil && !isCleanShutdown(err) {
			return fmt.Errorf("run server: %w", err)
		}
		logger.Info("server shutdown complete")
		return nil
	case sig := <-sigCh:
		logger.Info("received signal, shutting down", slog.String("signal", sig.String()))
		server.Shutdown()
		if err := server.Close(); err != nil {
			logger.Warn("error closing connection", slog.String("error", err.Error()))
		}
		if err := os.Stdin.Close(); err != nil {
			logger.Debug("error closing stdin", slog.String("error", err.Error()))
		}

		select {
		case err := <-errCh:
			if err != nil {
				logger.Debug("RunStdio returned after close", slog.String("error", err.Error()))
			}
		case <-time.After(5 * time.Second):
			logger.Warn("shutdown timed out, forcing exit")
		}

		logger.Info("server shutdown complete")
		return nil
	}
}
