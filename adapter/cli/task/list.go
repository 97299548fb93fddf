package task

import (
	"fmt"

	"github.com/felixgeelhaar/todo/internal/tasks/application/queries"
	"github.com/spf13/cobra"
)

var pendingOnly bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List all tasks in id order.

Examples:
  todo list
  todo list --pending`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		tasks, err := app.ListTasksHandler.Handle(cmd.Context(), queries.ListTasksQuery{Pending: pendingOnly})
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(tasks) == 0 {
			fmt.Fprintln(out, "No tasks found.")
			return nil
		}
		for _, t := range tasks {
			fmt.Fprintf(out, "%d. %s\n", t.ID, t.Summary)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&pendingOnly, "pending", "p", false, "hide completed tasks")
}
