package generator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ziadkadry99/brandcraft/internal/brand"
	"github.com/ziadkadry99/brandcraft/internal/db"
	"github.com/ziadkadry99/brandcraft/internal/history"
	"github.com/ziadkadry99/brandcraft/internal/llm"
)

type mockProvider struct {
	mu      sync.Mutex
	calls   []llm.CompletionRequest
	content string
	err     error
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)
	if m.err != nil {
		return nil, m.err
	}
	return &llm.CompletionResponse{Content: m.content, Model: "mock-model"}, nil
}

type failingRecorder struct{}

func (failingRecorder) Record(context.Context, history.Generation) (string, error) {
	return "", errors.New("disk full")
}

const fencedResult = "```json\n" + `{
  "brand_names": ["GreenBrew", "SolarSip", "EcoBean", "SunCup", "LeafLatte"],
  "tagline": "Brewed by the sun.",
  "description": "Solar coffee.",
  "target_audience": "Commuters",
  "color_palette": ["#2E7D32", "#A5D6A7", "#1B5E20", "#FFFFFF", "#000000"],
  "logo_prompt": "A leaf cup",
  "instagram_bio": "☀️ coffee"
}` + "\n```"

func setupStore(t *testing.T) *history.Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return history.NewStore(database)
}

func TestGenerateRequiresIdea(t *testing.T) {
	g := New(&mockProvider{content: fencedResult})
	if _, err := g.Generate(context.Background(), brand.Request{}); !errors.Is(err, ErrIdeaRequired) {
		t.Errorf("expected ErrIdeaRequired, got %v", err)
	}
}

func TestGenerateAcceptsWhitespaceIdea(t *testing.T) {
	g := New(nil)
	out, err := g.Generate(context.Background(), brand.Request{Idea: "   "})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Source != history.SourceFallback || len(out.Result.BrandNames) != 5 {
		t.Errorf("unexpected outcome %+v", out)
	}
}

// blockingProvider waits until its context ends.
type blockingProvider struct{}

func (blockingProvider) Name() string { return "blocking" }

func (blockingProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestGenerateProviderTimeout(t *testing.T) {
	g := New(blockingProvider{}, WithTimeout(20*time.Millisecond))

	start := time.Now()
	out, err := g.Generate(context.Background(), brand.Request{Idea: "coffee"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Source != history.SourceFallback {
		t.Errorf("Source = %q, want fallback", out.Source)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("provider call was not bounded: %v", elapsed)
	}
}

func TestGenerateRecordsAfterRequestDeadline(t *testing.T) {
	store := setupStore(t)
	g := New(blockingProvider{}, WithRecorder(store))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	out, err := g.Generate(ctx, brand.Request{Idea: "coffee"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Source != history.SourceFallback {
		t.Errorf("Source = %q, want fallback", out.Source)
	}
	if out.ID == "" {
		t.Fatal("expected the fallback to be recorded")
	}

	n, err := store.Count(context.Background())
	if err != nil || n != 1 {
		t.Errorf("Count = %d, %v", n, err)
	}
}

func TestWithTimeoutIgnoresNonPositive(t *testing.T) {
	g := New(nil, WithTimeout(0))
	if g.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", g.timeout, DefaultTimeout)
	}
}

func TestGenerateUsesProvider(t *testing.T) {
	mock := &mockProvider{content: fencedResult}
	store := setupStore(t)
	g := New(mock, WithRecorder(store), WithModel("custom"))

	out, err := g.Generate(context.Background(), brand.Request{Idea: "A solar coffee shop", Audience: "Commuters"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Source != history.SourceAI || out.Result.PrimaryName() != "GreenBrew" {
		t.Errorf("unexpected outcome %+v", out)
	}
	if out.Request.Style != "Modern" {
		t.Errorf("empty style should default to Modern, got %q", out.Request.Style)
	}

	if len(mock.calls) != 1 {
		t.Fatalf("expected one provider call, got %d", len(mock.calls))
	}
	call := mock.calls[0]
	if !call.JSONMode || call.MaxTokens != 512 || call.Temperature != 0.7 || call.Model != "custom" {
		t.Errorf("unexpected completion request %+v", call)
	}
	user := call.Messages[len(call.Messages)-1].Content
	for _, want := range []string{"Business Idea: A solar coffee shop", "Style: Modern", `"brand_names"`, `"instagram_bio"`} {
		if !strings.Contains(user, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	stored, err := store.Get(context.Background(), out.ID)
	if err != nil || stored == nil {
		t.Fatalf("expected stored generation, got %v %v", stored, err)
	}
	if stored.Source != history.SourceAI || stored.Result.Tagline != "Brewed by the sun." {
		t.Errorf("unexpected stored generation %+v", stored)
	}
}

func TestGenerateFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		provider llm.Provider
	}{
		{"no provider", nil},
		{"provider error", &mockProvider{err: errors.New("503")}},
		{"malformed output", &mockProvider{content: "Sure! Here are some brand names: Ace, Apex"}},
		{"missing keys", &mockProvider{content: `{"brand_names":["Ace"]}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.provider, WithFallback(NewFallback(1, 2)))
			out, err := g.Generate(context.Background(), brand.Request{Idea: "A sustainable coffee shop", Style: "Bold"})
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if out.Source != history.SourceFallback {
				t.Errorf("source = %q", out.Source)
			}
			if len(out.Result.BrandNames) != 5 || len(out.Result.ColorPalette) != 5 {
				t.Errorf("unexpected fallback result %+v", out.Result)
			}
			if out.ID != "" {
				t.Error("no recorder configured, ID should be empty")
			}
		})
	}
}

func TestGenerateRecorderFailureIsNotFatal(t *testing.T) {
	g := New(&mockProvider{content: fencedResult}, WithRecorder(failingRecorder{}))
	out, err := g.Generate(context.Background(), brand.Request{Idea: "coffee"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Result == nil || out.ID != "" {
		t.Errorf("unexpected outcome %+v", out)
	}
}

func TestKeyword(t *testing.T) {
	tests := []struct {
		idea string
		want string
	}{
		{"A sustainable coffee shop", "Sustainable"},
		{"AI-powered fitness", "Ai-powered"},
		{"a an the", "Brand"},
		{"", "Brand"},
		{"café ÉCLAIR shop", "Café"},
		{"go URBAN farms", "Urban"},
	}
	for _, tt := range tests {
		if got := Keyword(tt.idea); got != tt.want {
			t.Errorf("Keyword(%q) = %q, want %q", tt.idea, got, tt.want)
		}
	}
}

func TestFallbackShape(t *testing.T) {
	f := NewFallback(42, 7)
	for _, style := range brand.Styles {
		t.Run(string(style), func(t *testing.T) {
			res := f.Generate(brand.Request{Idea: "A sustainable coffee shop", Style: string(style)})
			words := styleData[style]

			if len(res.BrandNames) != 5 {
				t.Fatalf("expected 5 names, got %v", res.BrandNames)
			}
			if res.BrandNames[3] != "The "+string(style)+" Sustainable" {
				t.Errorf("fourth name = %q", res.BrandNames[3])
			}
			if !hasPrefixFrom(res.BrandNames[0], words.prefixes) || !strings.HasSuffix(res.BrandNames[0], "Sustainable") {
				t.Errorf("first name = %q", res.BrandNames[0])
			}
			if !strings.HasPrefix(res.BrandNames[2], "Sustainable ") {
				t.Errorf("third name = %q", res.BrandNames[2])
			}
			if !samePalette(res.ColorPalette, words.palette) {
				t.Errorf("palette %v is not a permutation of %v", res.ColorPalette, words.palette)
			}
			if strings.Contains(res.Tagline, "%") {
				t.Errorf("tagline not formatted: %q", res.Tagline)
			}
			if res.TargetAudience != "General Consumers seeking quality." {
				t.Errorf("target audience = %q", res.TargetAudience)
			}
			wantDesc := "A " + string(style) + " approach to A sustainable coffee shop, designed for everyone. Innovating the future of your industry."
			if res.Description != wantDesc {
				t.Errorf("description = %q", res.Description)
			}
			if !strings.HasSuffix(res.InstagramBio, "For you | 👇 Check us out!") {
				t.Errorf("bio = %q", res.InstagramBio)
			}
		})
	}
}

func TestFallbackUnknownStyleUsesModernData(t *testing.T) {
	res := NewFallback(1, 1).Generate(brand.Request{Idea: "coffee beans", Style: "Retro", Audience: "Students"})
	if !samePalette(res.ColorPalette, styleData[brand.StyleModern].palette) {
		t.Errorf("expected Modern palette, got %v", res.ColorPalette)
	}
	if res.BrandNames[3] != "The Retro Coffee" {
		t.Errorf("fourth name = %q", res.BrandNames[3])
	}
	if res.TargetAudience != "Students" || !strings.Contains(res.InstagramBio, "For Students") {
		t.Errorf("audience not used: %+v", res)
	}
}

func TestFallbackDoesNotMutateTables(t *testing.T) {
	before := append([]string(nil), styleData[brand.StyleBold].palette...)
	f := NewFallback(3, 4)
	for i := 0; i < 10; i++ {
		f.Generate(brand.Request{Idea: "x", Style: "Bold"})
	}
	for i, c := range styleData[brand.StyleBold].palette {
		if c != before[i] {
			t.Fatal("shuffle must not reorder the shared palette table")
		}
	}
}

func TestFallbackConcurrent(t *testing.T) {
	f := NewFallback(5, 6)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Generate(brand.Request{Idea: "parallel ideas", Style: "Playful"})
		}()
	}
	wg.Wait()
}

func hasPrefixFrom(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func samePalette(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	counts := map[string]int{}
	for _, c := range want {
		counts[c]++
	}
	for _, c := range got {
		counts[c]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}
