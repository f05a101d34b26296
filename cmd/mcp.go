package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/brandcraft/internal/generator"
	"github.com/ziadkadry99/brandcraft/internal/history"
	mcpserver "github.com/ziadkadry99/brandcraft/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing brand generation, logo rendering and history tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appCfg
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		store := history.NewStore(database)
		srv := mcpserver.NewServer(newGenerator(cfg, generator.WithRecorder(store)), store)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
