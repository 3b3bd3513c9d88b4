package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/typecheck/internal/presentation/tui"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List the registered shapes",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := shapes().Entries()
		plain, _ := cmd.Flags().GetBool("plain")

		if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprint(cmd.OutOrStdout(), tui.ShapesPlain(entries))
			return nil
		}

		render, err := tui.NewRenderer()
		if err != nil {
			return err
		}
		out, err := render(tui.ShapesMarkdown(entries))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shapesCmd)
	shapesCmd.Flags().Bool("plain", false, "Print tab separated lines even on a terminal")
}
