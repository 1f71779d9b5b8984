package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/dodo/internal/tasks"
)

// NewAddCommand returns the add subcommand.
func NewAddCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a task",
		ArgsUsage: "<title...>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "due",
				Usage: "Due date (yyyy-mm-dd)",
			},
			&cli.StringFlag{
				Name:    "priority",
				Aliases: []string{"p"},
				Usage:   "Priority (low|med|high)",
			},
			&cli.StringFlag{
				Name:  "tags",
				Usage: "Comma-separated tags",
			},
		},
		Action: runAdd,
	}
}

func runAdd(_ context.Context, cmd *cli.Command) error {
	title := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if title == "" {
		return fmt.Errorf("title is required. Try: dodo add Buy milk --due 2026-08-31 -p high")
	}

	store, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}

	due, err := tasks.ParseDueInput(cmd.String("due"))
	if err != nil {
		return fmt.Errorf("parse due date: %w", err)
	}

	prioInput := cmd.String("priority")
	if prioInput == "" {
		prioInput = cfg.Defaults.Priority
	}

	t := store.Add(title, due, tasks.PriorityFromInput(prioInput), tasks.ParseTags(cmd.String("tags")))
	if err := store.Save(); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	fmt.Printf("Added #%d: %s\n", t.ID, t.Title)
	return nil
}
