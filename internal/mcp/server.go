// Package mcp exposes brand generation and logo rendering as MCP tools.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/brandcraft/internal/brand"
	"github.com/ziadkadry99/brandcraft/internal/generator"
	"github.com/ziadkadry99/brandcraft/internal/history"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Generator produces a brand identity for a request.
type Generator interface {
	Generate(ctx context.Context, req brand.Request) (*generator.Outcome, error)
}

// HistoryLister reads stored generations.
type HistoryLister interface {
	List(ctx context.Context, limit, offset int) ([]history.Generation, error)
}

// Server wraps an MCP server that exposes the BrandCraft tools.
type Server struct {
	gen     Generator
	history HistoryLister
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server. hist may be nil, in which case the
// history tool is not registered.
func NewServer(gen Generator, hist HistoryLister) *Server {
	s := &Server{
		gen:     gen,
		history: hist,
	}

	s.mcp = server.NewMCPServer(
		"brandcraft",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(generateBrandIdentityTool, s.handleGenerateBrandIdentity)
	s.mcp.AddTool(renderLogoTool, s.handleRenderLogo)
	if s.history != nil {
		s.mcp.AddTool(listGenerationsTool, s.handleListGenerations)
	}
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
