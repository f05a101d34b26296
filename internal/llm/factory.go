package llm

import (
	"fmt"
	"os"
)

// DefaultModels is the model used for each provider when none is configured.
var DefaultModels = map[string]string{
	"openai":      "gpt-4o-mini",
	"anthropic":   "claude-haiku-4-5-20251001",
	"google":      "gemini-2.0-flash",
	"huggingface": "mistralai/Mistral-7B-Instruct-v0.2",
	"openrouter":  "openai/gpt-4o-mini",
	"ollama":      "llama3",
}

// NewProvider builds the provider named by providerType, reading its
// credentials from the environment. An empty model selects the default.
func NewProvider(providerType string, model string) (Provider, error) {
	if model == "" {
		model = DefaultModels[providerType]
	}

	switch providerType {
	case "openai":
		key, err := requireEnv("OPENAI_API_KEY")
		if err != nil {
			return nil, err
		}
		return NewOpenAIProvider(key, model), nil

	case "anthropic":
		key, err := requireEnv("ANTHROPIC_API_KEY")
		if err != nil {
			return nil, err
		}
		return NewAnthropicProvider(key, model), nil

	case "google":
		key, err := requireEnv("GOOGLE_API_KEY")
		if err != nil {
			return nil, err
		}
		return NewGoogleProvider(key, model), nil

	case "huggingface":
		key, err := requireEnv("HUGGINGFACE_API_KEY")
		if err != nil {
			return nil, err
		}
		return NewHuggingFaceProvider(key, model), nil

	case "openrouter":
		key, err := requireEnv("OPENROUTER_API_KEY")
		if err != nil {
			return nil, err
		}
		return NewCompatibleProvider("openrouter", key, openRouterBaseURL, model), nil

	case "ollama":
		host := os.Getenv("OLLAMA_HOST")
		if host == "" {
			host = "http://localhost:11434"
		}
		return NewOllamaProvider(host, model), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}

func requireEnv(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("%s environment variable is not set", name)
	}
	return v, nil
}
