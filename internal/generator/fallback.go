package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/ziadkadry99/brandcraft/internal/brand"
)

type styleWords struct {
	prefixes []string
	suffixes []string
	palette  []string
	taglines []string // %[1]s is the keyword
}

var styleData = map[brand.Style]styleWords{
	brand.StyleModern: {
		prefixes: []string{"Neo", "Tech", "Ultra", "Next", "Flux"},
		suffixes: []string{"ly", "io", "sys", "lab", "hub"},
		palette:  []string{"#2563eb", "#3b82f6", "#60a5fa", "#1e293b", "#f8fafc"},
		taglines: []string{"The Future of %[1]s.", "Simply %[1]s.", "Reimagining %[1]s.", "Innovation First."},
	},
	brand.StyleMinimal: {
		prefixes: []string{"Pure", "Bare", "Mono", "True", "One"},
		suffixes: []string{"", "base", "node", "dot", "box"},
		palette:  []string{"#000000", "#171717", "#404040", "#d4d4d4", "#ffffff"},
		taglines: []string{"Just %[1]s.", "Pure %[1]s.", "Less is More.", "The Essence of %[1]s."},
	},
	brand.StyleLuxury: {
		prefixes: []string{"Grand", "Elite", "Prime", "Aura", "Royal"},
		suffixes: []string{"gold", "lux", "th", "mont", "vogue"},
		palette:  []string{"#000000", "#1c1917", "#78716c", "#d6d3d1", "#fbbf24"},
		taglines: []string{"Exquisitely %[1]s.", "Beyond %[1]s.", "Defined by Elegance.", "Timeless Quality."},
	},
	brand.StyleBold: {
		prefixes: []string{"Iron", "Mega", "Hyper", "Power", "Stark"},
		suffixes: []string{"force", "impact", "max", "strike", "core"},
		palette:  []string{"#dc2626", "#ea580c", "#fbbf24", "#0f172a", "#ffffff"},
		taglines: []string{"%[1]s Evolved.", "Unstoppable %[1]s.", "Dare to Lead.", "Power Your %[1]s."},
	},
	brand.StylePlayful: {
		prefixes: []string{"Go", "Fun", "Happy", "Snap", "Jolly"},
		suffixes: []string{"ify", "joy", "pop", "ster", "roo"},
		palette:  []string{"#ec4899", "#8b5cf6", "#f43f5e", "#fb923c", "#fde047"},
		taglines: []string{"Joyfully %[1]s.", "%[1]s for Everyone.", "Spark Your Day.", "Make %[1]s Fun."},
	},
}

var companyWords = []string{"Studio", "Co", "Global", "Works", "Group"}

// Fallback builds a result from word lists when no model output is usable.
// It is safe for concurrent use.
type Fallback struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFallback seeds a fallback generator. The same seeds give the same
// sequence of results.
func NewFallback(seed1, seed2 uint64) *Fallback {
	return &Fallback{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Keyword returns the first word of idea longer than three characters,
// capitalized, or "Brand".
func Keyword(idea string) string {
	for _, w := range strings.Fields(idea) {
		if utf8.RuneCountInString(w) > 3 {
			return capitalize(w)
		}
	}
	return "Brand"
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

// Generate returns a result for req. Unknown styles use the Modern word
// lists but keep their own name in the text.
func (f *Fallback) Generate(req brand.Request) *brand.Result {
	style := req.Style
	words, ok := styleData[brand.Style(style)]
	if !ok {
		words = styleData[brand.StyleModern]
	}
	kw := Keyword(req.Idea)

	f.mu.Lock()
	pick := func(xs []string) string { return xs[f.rng.IntN(len(xs))] }
	names := []string{
		pick(words.prefixes) + kw,
		kw + pick(words.suffixes),
		kw + " " + pick(companyWords),
		"The " + style + " " + kw,
		pick(words.prefixes) + pick(words.suffixes),
	}
	tagline := pick(words.taglines)
	palette := append([]string(nil), words.palette...)
	f.rng.Shuffle(len(palette), func(i, j int) { palette[i], palette[j] = palette[j], palette[i] })
	f.mu.Unlock()

	if strings.Contains(tagline, "%[1]s") {
		tagline = fmt.Sprintf(tagline, kw)
	}

	audience := req.Audience
	targetAudience := audience
	if targetAudience == "" {
		targetAudience = "General Consumers seeking quality."
	}
	designedFor := audience
	if designedFor == "" {
		designedFor = "everyone"
	}
	bioFor := audience
	if bioFor == "" {
		bioFor = "you"
	}

	return &brand.Result{
		BrandNames:     names,
		Tagline:        tagline,
		Description:    fmt.Sprintf("A %s approach to %s, designed for %s. Innovating the future of your industry.", style, req.Idea, designedFor),
		TargetAudience: targetAudience,
		ColorPalette:   palette,
		LogoPrompt:     fmt.Sprintf("A %s logo design for %s, vector style, clean lines, professional.", style, req.Idea),
		InstagramBio:   fmt.Sprintf("🚀 %s | ✨ %s vibes | 🌍 For %s | 👇 Check us out!", req.Idea, style, bioFor),
	}
}
