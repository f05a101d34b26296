package brand

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedResponse is returned when a generation payload does not match
// the Result schema.
var ErrMalformedResponse = errors.New("malformed generation result")

// DecodeResult parses a JSON generation payload. Every Result key must be
// present and non-null, and at least one brand name is required.
func DecodeResult(data []byte) (*Result, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var res Result
	targets := []struct {
		key string
		dst any
	}{
		{"brand_names", &res.BrandNames},
		{"tagline", &res.Tagline},
		{"description", &res.Description},
		{"target_audience", &res.TargetAudience},
		{"instagram_bio", &res.InstagramBio},
		{"logo_prompt", &res.LogoPrompt},
		{"color_palette", &res.ColorPalette},
	}
	for _, t := range targets {
		raw, ok := fields[t.key]
		if !ok || string(raw) == "null" {
			return nil, fmt.Errorf("%w: missing field %q", ErrMalformedResponse, t.key)
		}
		if err := json.Unmarshal(raw, t.dst); err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrMalformedResponse, t.key, err)
		}
	}

	if len(res.BrandNames) == 0 {
		return nil, fmt.Errorf("%w: brand_names is empty", ErrMalformedResponse)
	}
	return &res, nil
}

// ExtractJSON strips markdown code fences and any chatter around the outermost
// JSON object in a model completion.
func ExtractJSON(text string) string {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		return cleaned[start : end+1]
	}
	return cleaned
}
