package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/ziadkadry99/brandcraft/internal/brand"
	"github.com/ziadkadry99/brandcraft/internal/logo"
)

// Renderer prints a result and rebuilds the palette. When Logo is set the
// SVG wordmark for the first brand name is written to it.
type Renderer struct {
	out     io.Writer
	palette *Palette
	Logo    io.Writer
}

// NewRenderer writes results to out.
func NewRenderer(out io.Writer, palette *Palette) *Renderer {
	return &Renderer{out: out, palette: palette}
}

func (r *Renderer) Render(res *brand.Result, style string) {
	fmt.Fprintln(r.out, titleStyle.Render("Your Brand Identity"))

	section(r.out, "Brand Names")
	for _, name := range res.BrandNames {
		fmt.Fprintf(r.out, "  • %s\n", name)
	}

	section(r.out, "Tagline")
	fmt.Fprintln(r.out, "  "+taglineStyle.Render(res.Tagline))
	field(r.out, "Description", res.Description)
	field(r.out, "Target Audience", res.TargetAudience)
	field(r.out, "Instagram Bio", res.InstagramBio)
	field(r.out, "Logo Prompt", res.LogoPrompt)

	r.palette.Rebuild(res.ColorPalette)
	section(r.out, "Color Palette")
	for i, s := range r.palette.Swatches() {
		label, _ := s.Label()
		fmt.Fprintf(r.out, "  %d %s %s\n", i+1, swatchBlock(s.Color()), label)
	}

	if r.Logo == nil || len(res.BrandNames) == 0 {
		return
	}
	if style == "" {
		style = string(brand.DefaultStyle)
	}
	fmt.Fprintln(r.Logo, logo.Render(res.BrandNames[0], style, res.PrimaryColor()))
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render(title))
}

func field(w io.Writer, title, value string) {
	section(w, title)
	for _, line := range strings.Split(value, "\n") {
		fmt.Fprintln(w, "  "+line)
	}
}
