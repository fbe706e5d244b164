package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/nexon/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of nexon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "nexon version %s\n", build.Version)
			return err
		},
	}
}
