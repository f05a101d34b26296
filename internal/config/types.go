package config

// QualityTier selects the model used when none is configured explicitly.
type QualityTier string

const (
	QualityLite   QualityTier = "lite"
	QualityNormal QualityTier = "normal"
	QualityMax    QualityTier = "max"
)

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderAnthropic   ProviderType = "anthropic"
	ProviderOpenAI      ProviderType = "openai"
	ProviderGoogle      ProviderType = "google"
	ProviderHuggingFace ProviderType = "huggingface"
	ProviderOpenRouter  ProviderType = "openrouter"
	ProviderOllama      ProviderType = "ollama"
	// ProviderNone disables the LLM; every generation uses the fallback.
	ProviderNone ProviderType = "none"
)

// Config is the top-level brandcraft configuration, corresponding to .brandcraft.yml.
type Config struct {
	Provider     ProviderType   `yaml:"provider" koanf:"provider"`
	Model        string         `yaml:"model,omitempty" koanf:"model"`
	Quality      QualityTier    `yaml:"quality" koanf:"quality"`
	RateLimitRPM int            `yaml:"rate_limit_rpm" koanf:"rate_limit_rpm"`
	Server       ServerConfig   `yaml:"server" koanf:"server"`
	Database     DatabaseConfig `yaml:"database" koanf:"database"`
	Logging      LoggingConfig  `yaml:"logging" koanf:"logging"`
	Client       ClientConfig   `yaml:"client" koanf:"client"`

	// TimeoutSeconds bounds one LLM call before the fallback takes over.
	TimeoutSeconds int `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// DatabaseConfig holds the generation history database location.
type DatabaseConfig struct {
	Path string `yaml:"path" koanf:"path"`
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"` // console or json
	File   string `yaml:"file,omitempty" koanf:"file"`
}

// ClientConfig holds settings for the terminal client commands.
type ClientConfig struct {
	BaseURL        string `yaml:"base_url" koanf:"base_url"`
	DownloadDir    string `yaml:"download_dir" koanf:"download_dir"`
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}
