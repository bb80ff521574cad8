package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of storykeep",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("storykeep version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
