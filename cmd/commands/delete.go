package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/dodo/internal/tasks"
)

// NewDeleteCommand returns the del subcommand.
func NewDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "del",
		Aliases:   []string{"rm"},
		Usage:     "Delete a task",
		ArgsUsage: "<id>",
		Action:    runDelete,
	}
}

func runDelete(_ context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd.Args().First())
	if err != nil {
		return err
	}

	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	if !store.Delete(id) {
		return &tasks.NotFoundError{ID: id}
	}
	if err := store.Save(); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	fmt.Printf("Deleted #%d.\n", id)
	return nil
}
