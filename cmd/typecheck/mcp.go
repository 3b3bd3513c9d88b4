package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/typecheck/internal/service"
	"github.com/aretw0/typecheck/pkg/adapters/mcp"
	"github.com/aretw0/typecheck/pkg/adapters/memory"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts typecheck as an MCP Server on standard input/output.
Agents can call the check_document and list_shapes tools and read the
typecheck://shapes resource.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)

		cacheEntries, _ := cmd.Flags().GetInt("cache-entries")
		svc := service.New(shapes(),
			service.WithLogger(logger),
			service.WithCache(memory.NewCache(memory.WithMaxEntries(cacheEntries))),
		)
		logger.Info("starting typecheck MCP server (stdio)")
		return mcp.NewServer(svc).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().Int("cache-entries", memory.DefaultMaxEntries, "Maximum number of verdicts kept in memory")
}
