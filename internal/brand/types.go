package brand

// Style names one of the visual themes a brand identity can be generated in.
type Style string

const (
	StyleModern  Style = "Modern"
	StyleMinimal Style = "Minimal"
	StyleLuxury  Style = "Luxury"
	StyleBold    Style = "Bold"
	StylePlayful Style = "Playful"
)

// DefaultStyle is used wherever a request or form leaves the style empty.
const DefaultStyle = StyleModern

// NeutralColor is the logo colour used when a result has no palette.
const NeutralColor = "#333"

// Styles lists the recognized styles in the order they are offered to users.
var Styles = []Style{StyleModern, StyleMinimal, StyleLuxury, StyleBold, StylePlayful}

// Known reports whether s is one of the recognized styles.
func (s Style) Known() bool {
	for _, known := range Styles {
		if s == known {
			return true
		}
	}
	return false
}

// StyleOrDefault returns s as a Style, or DefaultStyle when s is empty.
// Unrecognized non-empty values are returned unchanged.
func StyleOrDefault(s string) Style {
	if s == "" {
		return DefaultStyle
	}
	return Style(s)
}

// Request is the payload a user submits to generate a brand identity.
type Request struct {
	Idea     string `json:"idea"`
	Style    string `json:"style"`
	Audience string `json:"audience"`
}

// Result holds every artifact generated for one Request.
type Result struct {
	BrandNames     []string `json:"brand_names"`
	Tagline        string   `json:"tagline"`
	Description    string   `json:"description"`
	TargetAudience string   `json:"target_audience"`
	InstagramBio   string   `json:"instagram_bio"`
	LogoPrompt     string   `json:"logo_prompt"`
	ColorPalette   []string `json:"color_palette"`
}

// PrimaryName returns the first brand name, or "" when there is none.
func (r *Result) PrimaryName() string {
	if r == nil || len(r.BrandNames) == 0 {
		return ""
	}
	return r.BrandNames[0]
}

// PrimaryColor returns the first palette colour, falling back to NeutralColor.
func (r *Result) PrimaryColor() string {
	if r == nil || len(r.ColorPalette) == 0 || r.ColorPalette[0] == "" {
		return NeutralColor
	}
	return r.ColorPalette[0]
}
