// Package task holds the task subcommands of the todo CLI.
package task

import (
	"fmt"

	"github.com/felixgeelhaar/todo/adapter/cli"
	"github.com/felixgeelhaar/todo/internal/shared/infrastructure/convert"
	"github.com/spf13/cobra"
)

// Commands returns the task subcommands, registered at the top level.
func Commands() []*cobra.Command {
	cmds := []*cobra.Command{listCmd, addCmd, removeCmd, completeCmd, showCmd}
	for _, c := range cmds {
		if c.Annotations == nil {
			c.Annotations = map[string]string{}
		}
		c.Annotations[cli.AnnotationStorage] = "true"
	}
	return cmds
}

func parseTaskID(s string) (int32, error) {
	id, err := convert.ParsePositiveInt32(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID: %w", err)
	}
	return id, nil
}

func requireApp() (*cli.App, error) {
	app := cli.GetApp()
	if app == nil {
		return nil, cli.ErrAppNotInitialized
	}
	return app, nil
}
