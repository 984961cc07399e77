package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/phrazzld/taskboard/internal/client"
	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks, err := opts.client().ListTasks(cmd.Context())
			if err != nil {
				opts.logger.Error("list failed", "error", err)
				return commandError("list tasks", err)
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(tasks)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatTaskTable(tasks))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	var priority, due string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return errors.New("title must not be blank")
			}
			task, err := opts.client().CreateTask(cmd.Context(), client.CreateTaskRequest{
				Title:    title,
				Priority: priority,
				DueDate:  due,
			})
			if err != nil {
				opts.logger.Error("create failed", "error", err)
				return commandError("create task", err)
			}
			opts.logger.Info("task created", "task_id", task.ID)
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatTaskDetail("Created", *task))
			return err
		},
	}
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority (low, medium, high); server default is medium")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	return cmd
}

func newUpdateCmd(opts *rootOptions) *cobra.Command {
	var (
		title     string
		priority  string
		due       string
		completed bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			var req client.UpdateTaskRequest
			flags := cmd.Flags()
			if flags.Changed("title") {
				req.Title = &title
			}
			if flags.Changed("priority") {
				req.Priority = &priority
			}
			if flags.Changed("due") {
				req.DueDate = &due
			}
			if flags.Changed("completed") {
				req.Completed = &completed
			}
			if req.IsEmpty() {
				return errors.New("nothing to update: pass at least one of --title, --priority, --due, --completed")
			}

			task, err := opts.client().UpdateTask(cmd.Context(), id, req)
			if err != nil {
				opts.logger.Error("update failed", "error", err, "task_id", id)
				return commandError("update task", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatTaskDetail("Updated", *task))
			return err
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority (low, medium, high)")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&completed, "completed", false, "Mark completed (use --completed=false to reopen)")
	return cmd
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			if err := opts.client().DeleteTask(cmd.Context(), id); err != nil {
				opts.logger.Error("delete failed", "error", err, "task_id", id)
				return commandError("delete task", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d\n", id)
			return err
		},
	}
}

func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

// commandError prefers the server's message over transport details.
func commandError(action string, err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("failed to %s: %s", action, apiErr.Message)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
