package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	fmcp "github.com/valter-silva-au/foresight/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  "Commands for running the foresight MCP (Model Context Protocol) server.",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the foresight MCP server on stdio",
	Long: `Start the foresight MCP server on stdio transport.

The server exposes scenario data as MCP tools that AI assistants can call:
list_scenarios, get_scenario, expand_parameter, find_similar,
aggregate_parameters.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Registry == nil {
			return fmt.Errorf("scenario registry not initialized")
		}

		srv := fmcp.NewServer(Registry, Store, Expander, Config, appVersion)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("running MCP server: %w", err)
		}

		return nil
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
