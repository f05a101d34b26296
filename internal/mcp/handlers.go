package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/brandcraft/internal/brand"
	"github.com/ziadkadry99/brandcraft/internal/generator"
	"github.com/ziadkadry99/brandcraft/internal/logo"
)

func (s *Server) handleGenerateBrandIdentity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idea, err := request.RequireString("idea")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: idea"), nil
	}

	out, err := s.gen.Generate(ctx, brand.Request{
		Idea:     idea,
		Style:    request.GetString("style", ""),
		Audience: request.GetString("audience", ""),
	})
	if errors.Is(err, generator.ErrIdeaRequired) {
		return mcp.NewToolResultError("Business idea is required"), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	data, err := json.MarshalIndent(out.Result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleRenderLogo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil || strings.TrimSpace(name) == "" {
		return mcp.NewToolResultError("missing required parameter: name"), nil
	}
	style := brand.StyleOrDefault(request.GetString("style", ""))
	color := request.GetString("color", brand.NeutralColor)

	return mcp.NewToolResultText(logo.Render(name, string(style), color)), nil
}

func (s *Server) handleListGenerations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	gens, err := s.history.List(ctx, limit, 0)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing generations failed: %v", err)), nil
	}
	if len(gens) == 0 {
		return mcp.NewToolResultText("No generations yet. Call generate_brand_identity to create one."), nil
	}

	var b strings.Builder
	for _, g := range gens {
		fmt.Fprintf(&b, "## %s (%s)\n", g.Result.PrimaryName(), g.Style)
		fmt.Fprintf(&b, "- **ID:** %s\n", g.ID)
		fmt.Fprintf(&b, "- **Idea:** %s\n", g.Idea)
		fmt.Fprintf(&b, "- **Tagline:** %s\n", g.Result.Tagline)
		fmt.Fprintf(&b, "- **Source:** %s\n", g.Source)
		fmt.Fprintf(&b, "- **Created:** %s\n\n", g.CreatedAt.Format("2006-01-02 15:04"))
	}
	return mcp.NewToolResultText(b.String()), nil
}
