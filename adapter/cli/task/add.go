package task

import (
	"fmt"

	"github.com/felixgeelhaar/todo/internal/tasks/application/commands"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name> [description]",
	Short: "Add a task",
	Long: `Add a new task. The id is assigned by the storage backend.

Examples:
  todo add "buy milk"
  todo add "walk dog" "around the park"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		addCmd := commands.AddTaskCommand{Name: args[0]}
		if len(args) > 1 {
			addCmd.Description = args[1]
		}

		if err := app.AddTaskHandler.Handle(cmd.Context(), addCmd); err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Task added: %s\n", addCmd.Name)
		return nil
	},
}
