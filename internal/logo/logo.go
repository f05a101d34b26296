// Package logo renders a brand name as a standalone SVG wordmark using one of
// a fixed set of style templates.
package logo

import (
	"fmt"
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ziadkadry99/brandcraft/internal/brand"
)

// Canvas geometry. Icons are drawn in a 60x60 box centred on (centerX, iconY).
const (
	Width     = 400
	Height    = 250
	centerX   = Width / 2
	iconY     = 80
	textY     = 180
	subtitleY = 210
)

// variant is one logo template. Icon markup may reference {color},
// {initial} and {font}.
type variant struct {
	icon        string
	grouped     bool
	font        string
	subtitle    string
	spacing     string
	uppercase   bool
	heavyWeight bool
}

var variants = map[brand.Style]variant{
	brand.StyleLuxury: {
		icon: `<path d="M5 25 L15 5 L25 25 L35 5 L45 25 L45 40 L5 40 Z" fill="none" stroke="{color}" stroke-width="2"/>` +
			`<circle cx="5" cy="25" r="2" fill="{color}"/>` +
			`<circle cx="15" cy="5" r="2" fill="{color}"/>` +
			`<circle cx="25" cy="25" r="2" fill="{color}"/>` +
			`<circle cx="35" cy="5" r="2" fill="{color}"/>` +
			`<circle cx="45" cy="25" r="2" fill="{color}"/>`,
		grouped:   true,
		font:      "Times New Roman, serif",
		subtitle:  "EST. 2025",
		spacing:   "4px",
		uppercase: true,
	},
	brand.StyleModern: {
		icon: `<rect x="10" y="10" width="40" height="40" rx="10" fill="{color}"/>` +
			`<path d="M20 20 L40 40 M40 20 L20 40" stroke="white" stroke-width="4" stroke-linecap="round"/>`,
		grouped:     true,
		font:        "Inter, sans-serif",
		// Spelled correctly; the first web version shipped "TEHNOLOGY".
		subtitle:    "TECHNOLOGY",
		spacing:     "1px",
		heavyWeight: true,
	},
	brand.StyleMinimal: {
		icon: `<circle cx="30" cy="30" r="25" stroke="{color}" stroke-width="2" fill="none"/>` +
			`<text x="30" y="38" text-anchor="middle" fill="{color}" font-size="20" font-family="{font}">{initial}</text>`,
		grouped: true,
		font:    "Inter, sans-serif",
		spacing: "1px",
	},
	brand.StyleBold: {
		icon:        `<path d="M10 10 H50 V30 H30 V50 H10 Z" fill="{color}"/>`,
		grouped:     true,
		font:        "Impact, sans-serif",
		subtitle:    "GROUP",
		spacing:     "1px",
		uppercase:   true,
		heavyWeight: true,
	},
	brand.StylePlayful: {
		icon: `<circle cx="30" cy="30" r="25" fill="{color}"/>` +
			`<path d="M20 35 Q30 45 40 35" stroke="white" stroke-width="3" fill="none" stroke-linecap="round"/>` +
			`<circle cx="20" cy="20" r="4" fill="white"/>` +
			`<circle cx="40" cy="20" r="4" fill="white"/>`,
		grouped: true,
		font:    "Comic Sans MS, cursive",
		spacing: "1px",
	},
}

var fallback = variant{
	icon:    fmt.Sprintf(`<rect x="%d" y="%d" width="50" height="50" fill="{color}"/>`, centerX-25, iconY-25),
	font:    "sans-serif",
	spacing: "1px",
}

// Subtitle returns the caption drawn under the name for style, or "".
func Subtitle(style string) string {
	return lookup(style).subtitle
}

// Font returns the font family used for style.
func Font(style string) string {
	return lookup(style).font
}

func lookup(style string) variant {
	if v, ok := variants[brand.Style(style)]; ok {
		return v
	}
	return fallback
}

// Render returns a complete SVG document for name drawn in color using the
// template for style. Unrecognized styles use a plain square icon.
func Render(name, style, color string) string {
	v := lookup(style)
	safeName := html.EscapeString(name)
	safeColor := html.EscapeString(color)

	icon := strings.NewReplacer(
		"{color}", safeColor,
		"{initial}", html.EscapeString(initial(name)),
		"{font}", v.font,
	).Replace(v.icon)

	transform, weight := "none", "400"
	if v.uppercase {
		transform = "uppercase"
	}
	if v.heavyWeight {
		weight = "800"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="100%%" height="100%%" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg" style="max-height: 200px;">`, Width, Height)
	b.WriteString("\n")
	if v.grouped {
		fmt.Fprintf(&b, `<g transform="translate(%d, %d) scale(1.5)">%s</g>`, centerX-30, iconY-30, icon)
	} else {
		b.WriteString(icon)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle" fill="white" font-family="%s" font-size="42" font-weight="%s" letter-spacing="%s" style="text-transform: %s">%s</text>`,
		centerX, textY, v.font, weight, v.spacing, transform, safeName)
	if v.subtitle != "" {
		b.WriteString("\n")
		fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle" fill="%s" font-family="%s" font-size="14" letter-spacing="3px" style="opacity: 0.7; text-transform: uppercase;">%s</text>`,
			centerX, subtitleY, safeColor, v.font, v.subtitle)
	}
	b.WriteString("\n</svg>")
	return b.String()
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
