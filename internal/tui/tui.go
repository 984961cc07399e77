package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/phrazzld/taskboard/internal/client"
)

// Run starts the interactive client and blocks until the user quits or ctx
// is cancelled. A nil logger discards log output.
func Run(ctx context.Context, c *client.Client, logger *slog.Logger) error {
	if c == nil {
		return errors.New("task client is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	program := tea.NewProgram(newModel(ctx, c, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
