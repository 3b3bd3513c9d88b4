package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/typecheck"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of typecheck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "typecheck version %s\n", strings.TrimSpace(typecheck.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
