package task

import (
	"fmt"

	"github.com/felixgeelhaar/todo/internal/tasks/application/commands"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <task-id>",
	Short:   "Remove a task",
	Aliases: []string{"rm"},
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

		if err := app.RemoveTaskHandler.Handle(cmd.Context(), commands.RemoveTaskCommand{TaskID: taskID}); err != nil {
			return fmt.Errorf("failed to remove task: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Task removed: %d\n", taskID)
		return nil
	},
}
