package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/engine/layers"
	"gopkg.in/yaml.v3"
)

// effectiveView is the YAML shape printed by layer effective.
type effectiveView struct {
	Name     string            `yaml:"name"`
	Role     string            `yaml:"role"`
	Packages []string          `yaml:"packages"`
	Env      map[string]string `yaml:"env"`
	Layers   []string          `yaml:"layers"`
}

func (c *CLI) newLayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layer",
		Short: "Manage configuration layers",
	}
	cmd.AddCommand(
		c.newLayerCreateCmd(),
		c.newLayerListCmd(),
		c.newLayerEffectiveCmd(),
	)
	return cmd
}

func (c *CLI) newLayerCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create LEVEL [NAME]",
		Short: "Create or overwrite a layer fragment",
		Long:  "LEVEL is one of global, team, project or user. Every level except global needs a NAME.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 2 {
				name = args[1]
			}
			role, _ := cmd.Flags().GetString("role")
			pkgs, _ := cmd.Flags().GetStringSlice("package")
			pairs, _ := cmd.Flags().GetStringArray("env")

			env, err := parseAssignments(pairs)
			if err != nil {
				return err
			}
			fragment := domain.Fragment{Role: role, Env: env}
			for _, p := range pkgs {
				fragment.Packages = append(fragment.Packages, domain.ResolvedRef(p))
			}
			if err := c.app.CreateLayer(cmd.Context(), args[0], name, fragment); err != nil {
				return err
			}
			label := args[0]
			if name != "" {
				label += "/" + name
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved layer %s\n", label)
			return err
		},
	}
	cmd.Flags().StringP("role", "r", "", "Role set by the layer")
	cmd.Flags().StringSliceP("package", "p", nil, "Resolved package reference added by the layer")
	cmd.Flags().StringArrayP("env", "e", nil, "Variable set by the layer, as KEY=VALUE")
	return cmd
}

func (c *CLI) newLayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored layers by level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			byLevel, err := c.app.ListLayers(cmd.Context())
			if err != nil {
				return err
			}
			var b strings.Builder
			for _, level := range domain.LayerLevels {
				names := byLevel[level]
				if len(names) == 0 {
					continue
				}
				b.WriteString(headerStyle.Render(string(level)) + "\n")
				for _, name := range names {
					b.WriteString("  " + name + "\n")
				}
			}
			if b.Len() == 0 {
				b.WriteString(mutedStyle.Render("no layers") + "\n")
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}

func (c *CLI) newLayerEffectiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "effective ENV",
		Short: "Print an environment with its layers merged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			team, _ := cmd.Flags().GetString("team")
			project, _ := cmd.Flags().GetString("project")
			user, _ := cmd.Flags().GetString("user")

			cfg, err := c.app.Effective(cmd.Context(), layers.Request{
				Env:     args[0],
				Team:    team,
				Project: project,
				User:    user,
			})
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(effectiveView{
				Name:     cfg.Name,
				Role:     cfg.Role,
				Packages: domain.RefStrings(cfg.Packages),
				Env:      cfg.Env,
				Layers:   cfg.Layers,
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().String("team", "", "Team layer to apply")
	cmd.Flags().String("project", "", "Project layer to apply")
	cmd.Flags().String("user", "", "User layer to apply, defaults to the configured user")
	return cmd
}
