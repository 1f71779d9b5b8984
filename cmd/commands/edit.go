package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/dodo/internal/tasks"
)

// NewEditCommand returns the edit subcommand. Only the flags supplied
// change; everything else is preserved.
func NewEditCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit fields of a task",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "title",
				Aliases: []string{"t"},
				Usage:   "New title",
			},
			&cli.StringFlag{
				Name:  "due",
				Usage: "New due date (yyyy-mm-dd, or 'none' to clear)",
			},
			&cli.StringFlag{
				Name:    "priority",
				Aliases: []string{"p"},
				Usage:   "New priority (low|med|high)",
			},
			&cli.StringFlag{
				Name:  "tags",
				Usage: "New comma-separated tags (or 'none' to clear)",
			},
		},
		Action: runEdit,
	}
}

func runEdit(_ context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd.Args().First())
	if err != nil {
		return err
	}

	var patch tasks.Patch
	if cmd.IsSet("title") {
		title := cmd.String("title")
		if title == "" {
			return fmt.Errorf("title cannot be empty")
		}
		patch.Title = &title
	}
	if cmd.IsSet("due") {
		due, err := tasks.ParseDueInput(cmd.String("due"))
		if err != nil {
			return fmt.Errorf("parse due date: %w", err)
		}
		patch.Due = due
		patch.DueSet = true
	}
	if cmd.IsSet("priority") {
		prio := tasks.PriorityFromInput(cmd.String("priority"))
		patch.Priority = &prio
	}
	if cmd.IsSet("tags") {
		patch.Tags = tasks.ParseTags(cmd.String("tags"))
		patch.TagsSet = true
	}

	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	if _, err := store.Update(id, patch); err != nil {
		return err
	}
	if err := store.Save(); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	fmt.Printf("Edited #%d.\n", id)
	return nil
}
