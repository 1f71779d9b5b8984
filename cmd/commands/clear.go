package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/dodo/internal/tasks"
)

// NewClearCommand returns the clear subcommand.
func NewClearCommand() *cli.Command {
	return &cli.Command{
		Name:   "clear",
		Usage:  "Remove all completed tasks",
		Action: runClear,
	}
}

func runClear(_ context.Context, cmd *cli.Command) error {
	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	removed := store.RemoveWhere(func(t tasks.Task) bool { return t.Done })
	if err := store.Save(); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	fmt.Printf("Removed %d completed task(s).\n", removed)
	return nil
}
