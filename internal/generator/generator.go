// Package generator turns a brand request into a result, asking an LLM first
// and falling back to word lists when the model is unavailable or its output
// does not parse.
package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ziadkadry99/brandcraft/internal/brand"
	"github.com/ziadkadry99/brandcraft/internal/history"
	"github.com/ziadkadry99/brandcraft/internal/llm"
)

// ErrIdeaRequired is returned when a request has no business idea.
var ErrIdeaRequired = errors.New("business idea is required")

const (
	maxTokens   = 512
	temperature = 0.7

	// DefaultTimeout bounds a single provider call.
	DefaultTimeout = 10 * time.Second
	recordTimeout  = 5 * time.Second
)

// Recorder persists finished generations.
type Recorder interface {
	Record(ctx context.Context, g history.Generation) (string, error)
}

// Outcome is a generated result and how it was produced.
type Outcome struct {
	Request brand.Request
	Result  *brand.Result
	Source  history.Source
	// ID is the stored record ID, empty when nothing was recorded.
	ID string
}

// Generator produces brand identities. Provider and Recorder may be nil.
type Generator struct {
	provider llm.Provider
	recorder Recorder
	fallback *Fallback
	model    string
	timeout  time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithRecorder stores every outcome in r.
func WithRecorder(r Recorder) Option {
	return func(g *Generator) { g.recorder = r }
}

// WithFallback replaces the default randomly seeded fallback.
func WithFallback(f *Fallback) Option {
	return func(g *Generator) { g.fallback = f }
}

// WithModel overrides the provider's default model.
func WithModel(model string) Option {
	return func(g *Generator) { g.model = model }
}

// WithTimeout bounds each provider call. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// New creates a Generator backed by provider.
func New(provider llm.Provider, opts ...Option) *Generator {
	now := uint64(time.Now().UnixNano())
	g := &Generator{
		provider: provider,
		fallback: NewFallback(now, now>>32|1),
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces a result for req. It fails only when the idea is empty.
func (g *Generator) Generate(ctx context.Context, req brand.Request) (*Outcome, error) {
	if req.Idea == "" {
		return nil, ErrIdeaRequired
	}
	if req.Style == "" {
		req.Style = string(brand.DefaultStyle)
	}

	out := &Outcome{Request: req, Source: history.SourceAI}
	res, err := g.complete(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("style", req.Style).Msg("using fallback generation")
		res = g.fallback.Generate(req)
		out.Source = history.SourceFallback
	}
	out.Result = res

	if g.recorder != nil {
		// The request may already be past its deadline after a slow provider.
		recCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
		defer cancel()
		id, err := g.recorder.Record(recCtx, history.Generation{
			Idea:     req.Idea,
			Style:    req.Style,
			Audience: req.Audience,
			Result:   res,
			Source:   out.Source,
		})
		if err != nil {
			log.Error().Err(err).Msg("saving generation")
		} else {
			out.ID = id
		}
	}
	return out, nil
}

func (g *Generator) complete(ctx context.Context, req brand.Request) (*brand.Result, error) {
	if g.provider == nil {
		return nil, errors.New("no LLM provider configured")
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Model:       g.model,
		Messages:    buildMessages(req),
		MaxTokens:   maxTokens,
		Temperature: temperature,
		JSONMode:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.provider.Name(), err)
	}

	log.Debug().
		Str("provider", g.provider.Name()).
		Str("model", resp.Model).
		Int("input_tokens", resp.InputTokens).
		Int("output_tokens", resp.OutputTokens).
		Float64("cost_usd", llm.EstimateCost(resp.Model, resp.InputTokens, resp.OutputTokens)).
		Msg("completion finished")

	return brand.DecodeResult([]byte(brand.ExtractJSON(resp.Content)))
}
