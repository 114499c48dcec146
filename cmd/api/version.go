package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"prompt-manager/internal/node"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "prompt-manager %s\n", Version)
		fmt.Fprintf(out, "  Go:   %s\n", runtime.Version())
		fmt.Fprintf(out, "  Node: %s (%s)\n", node.TypeName, node.DisplayName)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
