package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with
// -ldflags "-X github.com/emysliwietz/rosarium/internal/cmd.Version=v1.2.3".
var (
	Version = "dev"
	Commit  = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rosarium %s (%s)\n", Version, Commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
