// Package commands wires the dodo CLI: parsing user input, invoking the
// task store, and rendering results. Every mutating command saves the
// store before returning (write-through).
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/dodo/internal/config"
	"github.com/dohr-michael/dodo/internal/tasks"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "dodo",
		Usage: "A tiny TSV-backed to-do tracker",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.ConfigPath(),
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to the tasks file (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			NewAddCommand(),
			NewListCommand(),
			NewDoneCommand(),
			NewUndoneCommand(),
			NewEditCommand(),
			NewDeleteCommand(),
			NewSearchCommand(),
			NewClearCommand(),
			NewTUICommand(),
		},
		DefaultCommand: "list",
	}
}

// openStore resolves config and flags into a loaded store. Load runs
// exactly once per invocation, before any other store operation.
func openStore(cmd *cli.Command) (*tasks.Store, *config.Config, error) {
	if cmd.Bool("debug") {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := config.LoadOrDefault(cmd.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.IsSet("file") {
		cfg.Storage.File = cmd.String("file")
	}

	store := tasks.NewStore(cfg.Storage.File)
	if err := store.Load(); err != nil {
		return nil, nil, fmt.Errorf("load tasks: %w", err)
	}
	slog.Debug("store loaded", "file", store.Path(), "tasks", store.Len())
	return store, cfg, nil
}
