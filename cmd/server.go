package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/brandcraft/internal/generator"
	"github.com/ziadkadry99/brandcraft/internal/history"
	"github.com/ziadkadry99/brandcraft/internal/server"
	"github.com/ziadkadry99/brandcraft/internal/web"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the BrandCraft web server",
	Long:  `Serves the generator page, the POST /generate JSON API, the logo endpoint, generation history and downloads.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appCfg
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if serverPort > 0 {
			cfg.Server.Port = serverPort
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		store := history.NewStore(database)
		gen := newGenerator(cfg, generator.WithRecorder(store))

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, database)

		r := srv.Router()
		web.RegisterRoutes(r, gen)
		history.RegisterRoutes(r, store)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			log.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		log.Info().
			Str("version", Version).
			Int("port", cfg.Server.Port).
			Str("database", database.Path()).
			Str("provider", string(cfg.Provider)).
			Msg("brandcraft server starting")

		return srv.Start()
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
