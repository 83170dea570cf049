package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/progmatch/progmatch/internal/catalog"
	"github.com/progmatch/progmatch/internal/config"
	"github.com/progmatch/progmatch/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server (stdio transport)",
	Long: `Start the MCP (Model Context Protocol) server using stdio transport.

This lets AI assistants match students to programs and browse the catalog.

Add to Claude Desktop config (~/Library/Application Support/Claude/claude_desktop_config.json):

{
  "mcpServers": {
    "progmatch": {
      "command": "/path/to/progmatch",
      "args": ["mcp"]
    }
  }
}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !cfg.MCP.Enabled {
		return fmt.Errorf("MCP server is disabled in config")
	}

	store, err := catalog.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open catalog store: %w", err)
	}
	defer store.Close()

	server := mcp.New(store, cfg)

	// Handle interrupt
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()

	return server.Start(ctx)
}
