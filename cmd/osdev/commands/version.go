package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nebula-os/devtools/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show the current version of osdev`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "osdev %s\n", version.Version)
	},
}
