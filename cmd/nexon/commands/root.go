// Package commands implements the CLI commands for the nexon environment manager.
package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/nexon/internal/app"
	"go.trai.ch/nexon/internal/build"
	"go.trai.ch/zerr"
)

var errInvalidAssignment = zerr.New("expected KEY=VALUE")

// CLI represents the command line interface for nexon.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command

	jsonLogs func(bool)
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "nexon",
		Short:         "Environment and package manager for pipeline tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if c.jsonLogs == nil {
			return nil
		}
		enabled, err := cmd.Flags().GetBool("json-logs")
		if err != nil {
			return err
		}
		if enabled {
			c.jsonLogs(true)
		}
		return nil
	}

	rootCmd.AddCommand(c.newEnvCmd())
	rootCmd.AddCommand(c.newPkgCmd())
	rootCmd.AddCommand(c.newLayerCmd())
	rootCmd.AddCommand(c.newRecipeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// SetJSONLogsHook registers fn to be called when --json-logs is set.
func (c *CLI) SetJSONLogsHook(fn func(bool)) {
	c.jsonLogs = fn
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// parseAssignments turns KEY=VALUE flags into a map. Nil when there are none.
func parseAssignments(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, zerr.With(errInvalidAssignment, "value", pair)
		}
		out[strings.TrimSpace(key)] = value
	}
	return out, nil
}
