package task

import (
	"fmt"

	"github.com/felixgeelhaar/todo/internal/tasks/application/queries"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show <task-id>",
	Short:   "Show task details",
	Aliases: []string{"get", "view"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		taskID, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		task, err := app.GetTaskHandler.Handle(cmd.Context(), queries.GetTaskQuery{TaskID: taskID})
		if err != nil {
			return fmt.Errorf("failed to get task: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Task: %d\n", task.ID)
		fmt.Fprintf(out, "  Name:        %s\n", task.Name)
		if task.Description != "" {
			fmt.Fprintf(out, "  Description: %s\n", task.Description)
		}
		status := "pending"
		if task.Completed {
			status = "completed"
		}
		fmt.Fprintf(out, "  Status:      %s\n", status)
		return nil
	},
}
