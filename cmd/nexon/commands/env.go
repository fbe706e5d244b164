package commands

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/engine/envvars"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	formatDotenv = "dotenv"
	formatShell  = "shell"
)

var errUnknownFormat = zerr.New("unknown export format")

// environmentView is the YAML shape printed by env show.
type environmentView struct {
	Name        string            `yaml:"name"`
	Role        string            `yaml:"role"`
	Description string            `yaml:"description,omitempty"`
	CreatedAt   string            `yaml:"created_at"`
	Packages    []string          `yaml:"packages"`
	Env         map[string]string `yaml:"env,omitempty"`
}

func (c *CLI) newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Manage environments",
	}
	cmd.AddCommand(
		c.newEnvCreateCmd(),
		c.newEnvListCmd(),
		c.newEnvShowCmd(),
		c.newEnvInstallCmd(),
		c.newEnvUninstallCmd(),
		c.newEnvLockCmd(),
		c.newEnvDiffCmd(),
		c.newEnvExportCmd(),
		c.newEnvRunCmd(),
	)
	return cmd
}

func (c *CLI) newEnvCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an empty environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, _ := cmd.Flags().GetString("role")
			env, err := c.app.CreateEnvironment(cmd.Context(), args[0], role)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created environment %s [%s]\n", env.Name, env.Role)
			return err
		},
	}
	cmd.Flags().StringP("role", "r", "", "Role of the environment")
	return cmd
}

func (c *CLI) newEnvListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List environments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			envs, err := c.app.ListEnvironments(cmd.Context())
			if err != nil {
				return err
			}
			if len(envs) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("no environments"))
				return err
			}
			rows := make([][]string, 0, len(envs))
			for _, env := range envs {
				rows = append(rows, []string{env.Name, env.Role, env.CreatedAt.Format(time.RFC3339)})
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"NAME", "ROLE", "CREATED"}, rows))
			return err
		},
	}
}

func (c *CLI) newEnvShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print an environment document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := c.app.GetEnvironment(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(environmentView{
				Name:        env.Name,
				Role:        env.Role,
				Description: env.Description,
				CreatedAt:   env.CreatedAt.Format(time.RFC3339),
				Packages:    domain.RefStrings(env.Packages),
				Env:         env.Env,
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func (c *CLI) newEnvInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install ENV REQUIREMENT",
		Short: "Resolve a requirement and add its closure to an environment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			added, err := c.app.InstallPackage(cmd.Context(), args[0], args[1], dryRun)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(added) == 0 {
				_, err = fmt.Fprintln(w, mutedStyle.Render("nothing to install"))
				return err
			}
			verb := "installed"
			if dryRun {
				verb = "would install"
			}
			for _, ref := range added {
				if _, err := fmt.Fprintf(w, "%s %s\n", verb, addedStyle.Render(ref.String())); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Show what would be installed without saving")
	return cmd
}

func (c *CLI) newEnvUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall ENV REF",
		Short: "Remove a resolved package from an environment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := c.app.UninstallPackage(cmd.Context(), args[0], domain.ResolvedRef(args[1]))
			if err != nil {
				return err
			}
			for _, ref := range removed {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", removedStyle.Render(ref.String())); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (c *CLI) newEnvLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock ENV",
		Short: "Freeze an environment into its lockfile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lock, err := c.app.LockEnvironment(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "locked %s with %d packages\n", lock.Name, len(lock.Packages))
			return err
		},
	}
}

func (c *CLI) newEnvDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff FROM TO",
		Short: "Compare the packages and role of two environments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := c.app.DiffEnvironments(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderDiff(diff))
			return err
		},
	}
}

func renderDiff(diff domain.EnvironmentDiff) string {
	if diff.Empty() {
		return mutedStyle.Render("no differences") + "\n"
	}
	var b strings.Builder
	for _, ref := range diff.Added {
		b.WriteString(addedStyle.Render("+ "+ref.String()) + "\n")
	}
	for _, ref := range diff.Removed {
		b.WriteString(removedStyle.Render("- "+ref.String()) + "\n")
	}
	if diff.Role != nil {
		b.WriteString(changedStyle.Render("~ role: "+diff.Role.Old+" -> "+diff.Role.New) + "\n")
	}
	return b.String()
}

func (c *CLI) newEnvExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export ENV",
		Short: "Print the composed environment variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			vars, err := c.app.ExportEnvVars(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			var out string
			switch format {
			case formatDotenv:
				out = envvars.RenderDotenv(vars)
			case formatShell:
				out = envvars.RenderShell(vars)
			default:
				return zerr.With(errUnknownFormat, "format", format)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringP("format", "f", formatDotenv, "Output format: dotenv or shell")
	return cmd
}

func (c *CLI) newEnvRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run ENV -- COMMAND [ARGS...]",
		Short: "Run a command with an environment activated",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			activation, err := c.app.Activate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer func() { _ = activation.Restore() }()

			// The child inherits the activated process environment.
			child := exec.CommandContext(cmd.Context(), args[1], args[2:]...)
			child.Stdin = cmd.InOrStdin()
			child.Stdout = cmd.OutOrStdout()
			child.Stderr = cmd.ErrOrStderr()
			if err := child.Run(); err != nil {
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitErr.ExitCode())
				}
				return zerr.Wrap(err, "command failed")
			}
			return nil
		},
	}
}
