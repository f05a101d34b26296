package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != ProviderHuggingFace {
		t.Errorf("expected default provider %q, got %q", ProviderHuggingFace, cfg.Provider)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.Server.Port)
	}
	if cfg.ResolvedModel() != "mistralai/Mistral-7B-Instruct-v0.2" {
		t.Errorf("unexpected default model %q", cfg.ResolvedModel())
	}
	if cfg.Client.BaseURL != "http://localhost:5000" {
		t.Errorf("unexpected client base url %q", cfg.Client.BaseURL)
	}
	if cfg.TimeoutSeconds != 10 {
		t.Errorf("expected default LLM timeout 10s, got %d", cfg.TimeoutSeconds)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	original := DefaultConfig()
	original.Provider = ProviderOpenAI
	original.Model = "gpt-4o"
	original.Quality = QualityMax
	original.Server.Port = 8080
	original.Server.AllowAllOrigins = true
	original.Logging.Format = "json"
	original.Client.TimeoutSeconds = 15

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Provider != original.Provider || loaded.Model != original.Model || loaded.Quality != original.Quality {
		t.Errorf("provider/model/quality: got %+v", loaded)
	}
	if loaded.Server != original.Server {
		t.Errorf("server: got %+v, want %+v", loaded.Server, original.Server)
	}
	if loaded.Logging != original.Logging {
		t.Errorf("logging: got %+v, want %+v", loaded.Logging, original.Logging)
	}
	if loaded.Client != original.Client {
		t.Errorf("client: got %+v, want %+v", loaded.Client, original.Client)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Provider != ProviderHuggingFace {
		t.Errorf("expected default provider, got %q", cfg.Provider)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("BRANDCRAFT_PROVIDER", "openai")
	t.Setenv("BRANDCRAFT_RATE_LIMIT_RPM", "5")
	t.Setenv("BRANDCRAFT_SERVER__PORT", "9090")
	t.Setenv("BRANDCRAFT_LOGGING__LEVEL", "debug")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Provider != ProviderOpenAI {
		t.Errorf("provider: got %q", loaded.Provider)
	}
	if loaded.RateLimitRPM != 5 {
		t.Errorf("rate_limit_rpm: got %d", loaded.RateLimitRPM)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("server.port: got %d", loaded.Server.Port)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("logging.level: got %q", loaded.Logging.Level)
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"BRANDCRAFT_PROVIDER":         "provider",
		"BRANDCRAFT_SERVER__PORT":     "server.port",
		"BRANDCRAFT_CLIENT__BASE_URL": "client.base_url",
		"BRANDCRAFT_DATABASE__PATH":   "database.path",
		"BRANDCRAFT_RATE_LIMIT_RPM":   "rate_limit_rpm",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"offline", func(c *Config) { c.Provider = ProviderNone; c.Model = "" }, false},
		{"empty provider", func(c *Config) { c.Provider = "" }, true},
		{"invalid provider", func(c *Config) { c.Provider = "minimax" }, true},
		{"invalid quality", func(c *Config) { c.Quality = "ultra" }, true},
		{"no model for tier", func(c *Config) { c.Quality = "" }, true},
		{"explicit model without tier", func(c *Config) { c.Quality = ""; c.Model = "gpt-4o" }, false},
		{"negative rate", func(c *Config) { c.RateLimitRPM = -1 }, true},
		{"negative llm timeout", func(c *Config) { c.TimeoutSeconds = -1 }, true},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"empty db path", func(c *Config) { c.Database.Path = "" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"negative timeout", func(c *Config) { c.Client.TimeoutSeconds = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	if m := GetPreset(ProviderAnthropic, QualityLite); m != "claude-haiku-4-5-20251001" {
		t.Errorf("expected haiku model, got %q", m)
	}
	if m := GetPreset(ProviderOllama, QualityMax); m != "llama3:70b" {
		t.Errorf("expected llama3:70b, got %q", m)
	}
	if m := GetPreset("unknown", QualityLite); m != "" {
		t.Errorf("expected no preset, got %q", m)
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	tests := []struct {
		provider ProviderType
		want     string
	}{
		{ProviderAnthropic, "ANTHROPIC_API_KEY"},
		{ProviderOpenAI, "OPENAI_API_KEY"},
		{ProviderGoogle, "GOOGLE_API_KEY"},
		{ProviderHuggingFace, "HUGGINGFACE_API_KEY"},
		{ProviderOpenRouter, "OPENROUTER_API_KEY"},
		{ProviderOllama, ""},
		{ProviderNone, ""},
	}
	for _, tt := range tests {
		if got := APIKeyEnvVar(tt.provider); got != tt.want {
			t.Errorf("APIKeyEnvVar(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}

func TestValidatePort(t *testing.T) {
	for _, ok := range []string{"1", "5000", "65535"} {
		if err := validatePort(ok); err != nil {
			t.Errorf("validatePort(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "0", "abc", "70000"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("validatePort(%q) should fail", bad)
		}
	}
}
