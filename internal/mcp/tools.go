package mcp

import "github.com/mark3labs/mcp-go/mcp"

var styleEnum = mcp.Enum("Modern", "Minimal", "Luxury", "Bold", "Playful")

var generateBrandIdentityTool = mcp.NewTool("generate_brand_identity",
	mcp.WithDescription("Generate brand names, a tagline, description, target audience, colour palette, logo prompt and Instagram bio for a business idea. Returns JSON."),
	mcp.WithString("idea",
		mcp.Required(),
		mcp.Description("The business idea, e.g. \"A sustainable coffee shop powered by solar energy\""),
	),
	mcp.WithString("style",
		mcp.Description("Visual style (default Modern)"),
		styleEnum,
	),
	mcp.WithString("audience",
		mcp.Description("Target audience; inferred when omitted"),
	),
)

var renderLogoTool = mcp.NewTool("render_logo",
	mcp.WithDescription("Render a 400x250 SVG logo for a brand name in one of the five styles."),
	mcp.WithString("name",
		mcp.Required(),
		mcp.Description("Brand name to render"),
	),
	mcp.WithString("style",
		mcp.Description("Visual style (default Modern)"),
		styleEnum,
	),
	mcp.WithString("color",
		mcp.Description("Primary colour as a CSS colour string (default #333)"),
	),
)

var listGenerationsTool = mcp.NewTool("list_generations",
	mcp.WithDescription("List recent brand generations, newest first."),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of generations to return (default 10)"),
	),
)
