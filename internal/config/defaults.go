package config

// FileName is the config file looked up in the working directory.
const FileName = ".brandcraft.yml"

// qualityPresets maps each provider+quality combination to its model.
var qualityPresets = map[ProviderType]map[QualityTier]string{
	ProviderAnthropic: {
		QualityLite:   "claude-haiku-4-5-20251001",
		QualityNormal: "claude-sonnet-4-5-20250929",
		QualityMax:    "claude-opus-4-1-20250805",
	},
	ProviderOpenAI: {
		QualityLite:   "gpt-4o-mini",
		QualityNormal: "gpt-4o",
		QualityMax:    "gpt-4.1",
	},
	ProviderGoogle: {
		QualityLite:   "gemini-2.0-flash",
		QualityNormal: "gemini-2.5-flash",
		QualityMax:    "gemini-2.5-pro",
	},
	ProviderHuggingFace: {
		QualityLite:   "mistralai/Mistral-7B-Instruct-v0.2",
		QualityNormal: "mistralai/Mistral-7B-Instruct-v0.2",
		QualityMax:    "meta-llama/Meta-Llama-3-70B-Instruct",
	},
	ProviderOpenRouter: {
		QualityLite:   "openai/gpt-4o-mini",
		QualityNormal: "anthropic/claude-sonnet-4.5",
		QualityMax:    "anthropic/claude-opus-4.1",
	},
	ProviderOllama: {
		QualityLite:   "llama3",
		QualityNormal: "llama3",
		QualityMax:    "llama3:70b",
	},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:       ProviderHuggingFace,
		Quality:        QualityNormal,
		RateLimitRPM:   30,
		TimeoutSeconds: 10,
		Server: ServerConfig{
			Port: 5000,
		},
		Database: DatabaseConfig{
			Path: "database/brandcraft.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Client: ClientConfig{
			BaseURL:        "http://localhost:5000",
			DownloadDir:    ".",
			TimeoutSeconds: 60,
		},
	}
}

// GetPreset returns the model for the given provider and tier, or "" when
// the combination is unknown.
func GetPreset(provider ProviderType, tier QualityTier) string {
	return qualityPresets[provider][tier]
}

// ResolvedModel returns the configured model, falling back to the quality
// preset for the provider.
func (c *Config) ResolvedModel() string {
	if c.Model != "" {
		return c.Model
	}
	return GetPreset(c.Provider, c.Quality)
}
