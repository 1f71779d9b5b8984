package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/dodo/internal/tasks"
)

// NewSearchCommand returns the search subcommand.
func NewSearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Find tasks by text in title or tags",
		ArgsUsage: "<text>",
		Action:    runSearch,
	}
}

func runSearch(_ context.Context, cmd *cli.Command) error {
	query := strings.ToLower(strings.TrimSpace(strings.Join(cmd.Args().Slice(), " ")))
	if query == "" {
		return fmt.Errorf("usage: dodo search <text>")
	}

	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	matches := filterTasks(store.All(), func(t tasks.Task) bool {
		if strings.Contains(strings.ToLower(t.Title), query) {
			return true
		}
		for _, tag := range t.Tags {
			if strings.Contains(strings.ToLower(tag), query) {
				return true
			}
		}
		return false
	})

	return renderTable(matches)
}
