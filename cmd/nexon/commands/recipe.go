package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/nexon/internal/core/domain"
)

func (c *CLI) newRecipeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Derive environments from a base plus overrides",
	}
	cmd.AddCommand(
		c.newRecipeCreateCmd(),
		c.newRecipeListCmd(),
		c.newRecipeApplyCmd(),
	)
	return cmd
}

func (c *CLI) newRecipeCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create or overwrite a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, _ := cmd.Flags().GetString("base")
			overrides, _ := cmd.Flags().GetStringSlice("override")
			pairs, _ := cmd.Flags().GetStringArray("env")

			env, err := parseAssignments(pairs)
			if err != nil {
				return err
			}
			refs := make([]domain.ResolvedRef, 0, len(overrides))
			for _, o := range overrides {
				refs = append(refs, domain.ResolvedRef(o))
			}
			recipe, err := c.app.CreateRecipe(cmd.Context(), args[0], base, refs, env)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created recipe %s from %s\n", recipe.Name, recipe.Base)
			return err
		},
	}
	cmd.Flags().StringP("base", "b", "", "Base environment")
	cmd.Flags().StringSliceP("override", "o", nil, "Resolved package reference added on top of the base")
	cmd.Flags().StringArrayP("env", "e", nil, "Variable set by the recipe, as KEY=VALUE")
	_ = cmd.MarkFlagRequired("base")
	return cmd
}

func (c *CLI) newRecipeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recipes, err := c.app.ListRecipes(cmd.Context())
			if err != nil {
				return err
			}
			if len(recipes) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("no recipes"))
				return err
			}
			rows := make([][]string, 0, len(recipes))
			for _, r := range recipes {
				rows = append(rows, []string{r.Name, r.Base, strings.Join(domain.RefStrings(r.Overrides), ", ")})
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"RECIPE", "BASE", "OVERRIDES"}, rows))
			return err
		},
	}
}

func (c *CLI) newRecipeApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply NAME",
		Short: "Apply a recipe to produce an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _ := cmd.Flags().GetString("target")
			env, err := c.app.ApplyRecipe(cmd.Context(), args[0], target)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "applied recipe %s to %s (%d packages)\n", args[0], env.Name, len(env.Packages))
			return err
		},
	}
	cmd.Flags().StringP("target", "t", "", "Environment to write, defaults to the base environment")
	return cmd
}
