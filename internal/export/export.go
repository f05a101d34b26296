// Package export serializes a generated brand identity into the plain-text
// formats used by the copy and download actions.
package export

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/brandcraft/internal/brand"
)

const (
	// Filename is the name offered for downloaded identities.
	Filename = "brand-identity.txt"
	// MIMEType is the content type of downloaded identities.
	MIMEType = "text/plain"
)

// CopyText returns the compact clipboard form of res.
func CopyText(res *brand.Result) string {
	if res == nil {
		return ""
	}
	lines := []string{
		"Brand Names: " + strings.Join(res.BrandNames, ", "),
		"Tagline: " + res.Tagline,
		"Description: " + res.Description,
		"Audience: " + res.TargetAudience,
		"Colors: " + strings.Join(res.ColorPalette, ", "),
		"IG Bio: " + res.InstagramBio,
		"Logo Prompt: " + res.LogoPrompt,
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// DownloadText returns the labelled multi-section document for res, headed by
// the idea and style it was generated from.
func DownloadText(idea, style string, res *brand.Result) string {
	if res == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("BrandCraft Generation\n")
	b.WriteString("=====================\n")
	fmt.Fprintf(&b, "Idea: %s\n", idea)
	fmt.Fprintf(&b, "Style: %s\n\n", style)
	b.WriteString("Results:\n--------\n")

	names := make([]string, len(res.BrandNames))
	for i, n := range res.BrandNames {
		names[i] = "- " + n
	}

	sections := []struct {
		title string
		body  string
	}{
		{"Brand Names", strings.Join(names, "\n")},
		{"Tagline", res.Tagline},
		{"Description", res.Description},
		{"Target Audience", res.TargetAudience},
		{"Color Palette", strings.Join(res.ColorPalette, ", ")},
		{"Instagram Bio", res.InstagramBio},
		{"Logo Prompt", res.LogoPrompt},
	}
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s:\n%s", s.title, s.body)
	}
	return strings.TrimSpace(b.String())
}
