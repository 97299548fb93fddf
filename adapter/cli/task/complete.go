package task

import (
	"fmt"

	"github.com/felixgeelhaar/todo/internal/tasks/application/commands"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <task-id>",
	Short: "Mark a task as complete",
	Long: `Mark a task as complete by its ID. Completing a task twice is allowed.

Examples:
  todo complete 3
  todo done 3`,
	Aliases: []string{"done"},
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

		if err := app.CompleteTaskHandler.Handle(cmd.Context(), commands.CompleteTaskCommand{TaskID: taskID}); err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Task completed: %d\n", taskID)
		return nil
	},
}
