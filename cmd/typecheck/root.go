package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/typecheck/internal/logging"
	"github.com/aretw0/typecheck/pkg/registry"
)

var rootCmd = &cobra.Command{
	Use:   "typecheck",
	Short: "typecheck validates JSON and YAML documents against registered shapes",
	Long: `typecheck checks untrusted documents against shapes built from a small
algebra of checkers (number, string, boolean, literal, optional, union,
intersection, array, dict, strDict).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", envOr("TYPECHECK_LOG_LEVEL", "warn"), "Log level: debug, info, warn or error")
}

// newLogger builds the logger from the --log-level flag.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// shapes returns the registry every command works with.
func shapes() *registry.Registry {
	return registry.Builtin()
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
