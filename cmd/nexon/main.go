// Package main is the entry point for the nexon environment manager.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/nexon/cmd/nexon/commands"
	"go.trai.ch/nexon/internal/app"
	_ "go.trai.ch/nexon/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	// Components own the open store, so every run builds a fresh graph.
	components, _, err := graft.ExecuteFor[*app.Components](ctx, graft.DisableCache())
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := components.Close(); err != nil {
			components.Logger.Error(err)
		}
	}()

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetJSONLogsHook(components.SetJSONLogs)
	cli.SetArgs(args)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
