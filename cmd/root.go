package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/brandcraft/internal/config"
	"github.com/ziadkadry99/brandcraft/internal/logger"
)

var (
	cfgFile string
	verbose bool

	// appCfg is loaded before every command runs.
	appCfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "brandcraft",
	Short: "AI-powered brand identity generator",
	Long: `BrandCraft turns a business idea into a brand identity: names, a tagline,
a description, a colour palette, an Instagram bio, a logo prompt and an SVG
logo. Run the web server, generate from the terminal, or expose the
generator to AI agents over MCP.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.FileName, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w\nRun `brandcraft init` to create a config file", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	logger.Setup(cfg.Logging, nil)

	appCfg = cfg
	log.Debug().Str("config", cfgFile).Str("provider", string(cfg.Provider)).Msg("configuration loaded")
	return nil
}
