package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

var wizardProviders = []ProviderType{
	ProviderHuggingFace,
	ProviderAnthropic,
	ProviderOpenAI,
	ProviderGoogle,
	ProviderOpenRouter,
	ProviderOllama,
	ProviderNone,
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("enter a port between 1 and 65535")
	}
	return nil
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to BrandCraft! Let's configure your generator.")
	fmt.Println()

	cfg := DefaultConfig()

	items := make([]string, len(wizardProviders))
	for i, p := range wizardProviders {
		items[i] = string(p)
	}
	providerPrompt := promptui.Select{
		Label: "Select LLM provider (none = offline word-list generator)",
		Items: items,
	}
	providerIdx, _, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = wizardProviders[providerIdx]

	if cfg.Provider != ProviderNone {
		qualityPrompt := promptui.Select{
			Label: "Select quality tier",
			Items: []string{
				"lite   - fast and cheap",
				"normal - balanced",
				"max    - highest quality",
			},
			CursorPos: 1,
		}
		qualityIdx, _, err := qualityPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("quality selection: %w", err)
		}
		cfg.Quality = []QualityTier{QualityLite, QualityNormal, QualityMax}[qualityIdx]
	}

	portPrompt := promptui.Prompt{
		Label:    "Server port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)
	cfg.Client.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	dbPrompt := promptui.Prompt{
		Label:   "History database path",
		Default: cfg.Database.Path,
	}
	if cfg.Database.Path, err = dbPrompt.Run(); err != nil {
		return nil, fmt.Errorf("database path: %w", err)
	}

	if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" && os.Getenv(envVar) == "" {
		fmt.Printf("\nNote: Set %s in your environment or .env file. Without it every generation uses the fallback.\n", envVar)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
