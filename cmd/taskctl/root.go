package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/taskboard/internal/client"
	"github.com/phrazzld/taskboard/internal/config"
	"github.com/phrazzld/taskboard/internal/platform/logger"
	"github.com/phrazzld/taskboard/internal/tui"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	apiURL   string
	logFile  string
	logLevel string

	logCloser io.Closer
	logger    *slog.Logger
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "taskctl",
		Short:         "Manage tasks from the terminal",
		Long:          "taskctl talks to the task API. Run it without a subcommand to open the interactive view.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.apiURL, "api-url", "", "Task API base URL (default $TASKBOARD_API_URL or "+config.DefaultAPIURL+")")
	flags.StringVar(&opts.logFile, "log-file", "", "Write JSON logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level for --log-file (debug, info, warn, error)")

	cmd.AddCommand(
		newListCmd(opts),
		newAddCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
		newTUICmd(opts),
	)
	return cmd
}

// setup resolves the API URL and the logger. Logs are discarded unless
// --log-file is given, since the interactive view owns the terminal.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("api-url") {
		cfg, err := config.LoadClient()
		if err != nil {
			return fmt.Errorf("failed to load client configuration: %w", err)
		}
		o.apiURL = cfg.APIURL
	}

	if o.logFile == "" {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	level, ok := logger.ParseLevel(o.logLevel)
	if !ok {
		return fmt.Errorf("invalid log level %q", o.logLevel)
	}
	f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	o.logCloser = f
	o.logger = logger.New(f, level).With("component", "taskctl")
	return nil
}

func (o *rootOptions) close() error {
	if o.logCloser == nil {
		return nil
	}
	err := o.logCloser.Close()
	o.logCloser = nil
	return err
}

func (o *rootOptions) client() *client.Client {
	return client.New(o.apiURL)
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive task view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	opts.logger.Info("starting interactive view", "api_url", opts.apiURL)
	return tui.Run(cmd.Context(), opts.client(), opts.logger)
}
