package generator

import (
	"fmt"

	"github.com/ziadkadry99/brandcraft/internal/brand"
	"github.com/ziadkadry99/brandcraft/internal/llm"
)

const systemPrompt = "Act as a creative brand strategist. You MUST output valid JSON only. Do not add any conversational text."

const userPromptTemplate = `Generate branding assets for the following business:
Business Idea: %s
Style: %s
Target Audience: %s

The JSON object must have exactly these keys:
- "brand_names": (list of 5 strings)
- "tagline": (string)
- "description": (string, max 2 sentences)
- "target_audience": (string, infer if not provided)
- "color_palette": (list of 5 hex color codes)
- "logo_prompt": (string, prompt for an image generator)
- "instagram_bio": (string, with emojis)
JSON Output:`

func buildMessages(req brand.Request) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(userPromptTemplate, req.Idea, req.Style, req.Audience)},
	}
}
