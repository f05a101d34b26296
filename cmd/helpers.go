package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ziadkadry99/brandcraft/internal/brand"
	"github.com/ziadkadry99/brandcraft/internal/config"
	"github.com/ziadkadry99/brandcraft/internal/db"
	"github.com/ziadkadry99/brandcraft/internal/generator"
	"github.com/ziadkadry99/brandcraft/internal/llm"
)

// createLLMProviderFromConfig creates an LLM provider based on config
// settings. The none provider yields a nil Provider.
func createLLMProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	if cfg.Provider == config.ProviderNone {
		return nil, nil
	}
	p, err := llm.NewProvider(string(cfg.Provider), cfg.ResolvedModel())
	if err != nil {
		return nil, err
	}
	return llm.NewRateLimitedProvider(p, cfg.RateLimitRPM), nil
}

// newGenerator builds the generator for cfg. A provider that cannot be
// created (usually a missing API key) leaves the fallback generator in
// charge rather than failing.
func newGenerator(cfg *config.Config, opts ...generator.Option) *generator.Generator {
	provider, err := createLLMProviderFromConfig(cfg)
	if err != nil {
		log.Warn().Err(err).Str("provider", string(cfg.Provider)).Msg("LLM provider unavailable, using fallback generator")
		provider = nil
	}
	opts = append([]generator.Option{generator.WithTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)}, opts...)
	return generator.New(provider, opts...)
}

// openDatabase opens the history database, creating its directory.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	path := cfg.Database.Path
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	return database, nil
}

func clientTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Client.TimeoutSeconds) * time.Second
}

// localGenerator runs the generator in-process for the terminal client.
type localGenerator struct {
	gen *generator.Generator
}

func (l localGenerator) Generate(ctx context.Context, req brand.Request) (*brand.Result, error) {
	out, err := l.gen.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	return out.Result, nil
}
