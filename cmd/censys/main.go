package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andyle182810/censys/logutil"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := execute(ctx, NewRootCmd(), os.Stderr)

	stop()
	os.Exit(code)
}

// execute runs cmd and returns the process exit code. Failures a subcommand
// already logged are not logged again.
func execute(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		logger := logutil.NewConsoleLogger(stderr, "error")
		logger.Error().Err(err).Msg("command failed")
	}

	return 1
}
