package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/dodo/internal/tasks"
)

// NewDoneCommand returns the done subcommand.
func NewDoneCommand() *cli.Command {
	return &cli.Command{
		Name:      "done",
		Usage:     "Mark a task complete",
		ArgsUsage: "<id>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runToggleDone(cmd, true)
		},
	}
}

// NewUndoneCommand returns the undone subcommand.
func NewUndoneCommand() *cli.Command {
	return &cli.Command{
		Name:      "undone",
		Usage:     "Mark a task incomplete",
		ArgsUsage: "<id>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runToggleDone(cmd, false)
		},
	}
}

func runToggleDone(cmd *cli.Command, to bool) error {
	id, err := parseID(cmd.Args().First())
	if err != nil {
		return err
	}

	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	if _, err := store.Update(id, tasks.Patch{Done: &to}); err != nil {
		return err
	}
	if err := store.Save(); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	if to {
		fmt.Printf("Completed #%d.\n", id)
	} else {
		fmt.Printf("Reopened #%d.\n", id)
	}
	return nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("provide a numeric id")
	}
	return id, nil
}
