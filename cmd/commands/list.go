package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/dodo/internal/tasks"
)

// NewListCommand returns the list subcommand.
func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List tasks",
		ArgsUsage: "[all|open|done]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "sort",
				Usage: "Sort order (id|due|prio)",
			},
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "Reverse the sort order",
			},
		},
		Action: runList,
	}
}

func runList(_ context.Context, cmd *cli.Command) error {
	store, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}

	scope := cmd.Args().First()
	if scope == "" {
		scope = cfg.Defaults.Scope
	}

	list := store.All()
	switch scope {
	case "all":
	case "done":
		list = filterTasks(list, func(t tasks.Task) bool { return t.Done })
	case "open":
		list = filterTasks(list, func(t tasks.Task) bool { return !t.Done })
	default:
		fmt.Printf("Unknown list scope %q, showing open tasks.\n", scope)
		list = filterTasks(list, func(t tasks.Task) bool { return !t.Done })
	}

	sortKey := cmd.String("sort")
	if sortKey == "" {
		sortKey = cfg.Defaults.Sort
	}
	sortTasks(list, sortKey)
	if cmd.Bool("reverse") {
		reverseTasks(list)
	}

	return renderTable(list)
}

func filterTasks(list []tasks.Task, keep func(tasks.Task) bool) []tasks.Task {
	out := list[:0]
	for _, t := range list {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func sortTasks(list []tasks.Task, key string) {
	switch key {
	case "due":
		// Tasks without a due date sort last.
		sort.SliceStable(list, func(i, j int) bool {
			a, b := list[i].Due, list[j].Due
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.Before(*b)
			}
		})
	case "prio":
		// HIGH first.
		rank := map[tasks.Priority]int{tasks.PriorityHigh: 0, tasks.PriorityMedium: 1, tasks.PriorityLow: 2}
		sort.SliceStable(list, func(i, j int) bool {
			return rank[list[i].Priority] < rank[list[j].Priority]
		})
	default:
		sort.SliceStable(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	}
}

func reverseTasks(list []tasks.Task) {
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
}
