package commands

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/engine/builder"
)

func (c *CLI) newPkgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pkg",
		Short: "Author, inspect and build packages",
	}
	cmd.AddCommand(
		c.newPkgCreateCmd(),
		c.newPkgListCmd(),
		c.newPkgResolveCmd(),
		c.newPkgGraphCmd(),
		c.newPkgBuildCmd(),
	)
	return cmd
}

func (c *CLI) newPkgCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Scaffold a package spec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := cmd.Flags().GetString("version")
			spec, err := c.app.CreatePackage(cmd.Context(), args[0], version)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created package %s\n", spec.Ref())
			return err
		},
	}
	cmd.Flags().String("version", domain.DefaultPackageVersion, "Version of the new package")
	return cmd
}

func (c *CLI) newPkgListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List packages and their versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pkgs, err := c.app.ListPackages(cmd.Context())
			if err != nil {
				return err
			}
			if len(pkgs) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("no packages"))
				return err
			}
			rows := make([][]string, 0, len(pkgs))
			for _, p := range pkgs {
				versions := make([]string, len(p.Versions))
				for i, v := range p.Versions {
					versions[i] = v.String()
				}
				rows = append(rows, []string{p.Name, strings.Join(versions, ", ")})
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"PACKAGE", "VERSIONS"}, rows))
			return err
		},
	}
}

func (c *CLI) newPkgResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve REQUIREMENT...",
		Short: "Resolve requirements to package references",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, _ := cmd.Flags().GetBool("deps")
			var refs []domain.ResolvedRef
			if deps {
				all, err := c.app.ResolveAll(cmd.Context(), args)
				if err != nil {
					return err
				}
				refs = all
			} else {
				for _, req := range args {
					ref, err := c.app.Resolve(cmd.Context(), req)
					if err != nil {
						return err
					}
					refs = append(refs, ref)
				}
			}
			for _, ref := range refs {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), ref); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("deps", "d", false, "Include transitive dependencies")
	return cmd
}

func (c *CLI) newPkgGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph REQUIREMENT...",
		Short: "Print the dependency graph of requirements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := c.app.Graph(cmd.Context(), args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderGraph(graph))
			return err
		},
	}
}

func renderGraph(graph *domain.DependencyGraph) string {
	var b strings.Builder
	for ref, children := range graph.All() {
		b.WriteString(ref.String())
		if len(children) > 0 {
			b.WriteString(mutedStyle.Render(" -> "))
			b.WriteString(strings.Join(domain.RefStrings(children), ", "))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *CLI) newPkgBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build REQUIREMENT",
		Short: "Run the build commands of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			withDeps, _ := cmd.Flags().GetBool("with-deps")
			jobs, _ := cmd.Flags().GetInt("jobs")
			statuses, err := c.app.Build(cmd.Context(), args[0], withDeps, jobs)
			for _, ref := range slices.Sorted(maps.Keys(statuses)) {
				status := statuses[ref]
				if _, werr := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ref, statusStyle(status).Render(string(status))); werr != nil {
					return werr
				}
			}
			return err
		},
	}
	cmd.Flags().Bool("with-deps", false, "Build dependencies first")
	cmd.Flags().IntP("jobs", "j", 1, "Number of packages built in parallel")
	return cmd
}

func statusStyle(s builder.Status) lipgloss.Style {
	switch s {
	case builder.StatusBuilt:
		return addedStyle
	case builder.StatusFailed, builder.StatusBlocked:
		return removedStyle
	default:
		return mutedStyle
	}
}
