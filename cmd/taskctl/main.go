// Package main implements taskctl, the command-line and terminal client for
// the task API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	opts := &rootOptions{}
	err := run(ctx, newRootCmd(opts), opts)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// run executes cmd and closes the log file afterwards. Cobra skips
// PersistentPostRunE when a command fails, so closing happens here.
func run(ctx context.Context, cmd *cobra.Command, opts *rootOptions) error {
	err := cmd.ExecuteContext(ctx)
	if closeErr := opts.close(); closeErr != nil && err == nil {
		err = fmt.Errorf("failed to close log file: %w", closeErr)
	}
	return err
}
