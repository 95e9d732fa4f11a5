package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridable at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lexitag version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lexitag", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
