package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabblegame-go/internal/api"
	"github.com/mcoot/scrabblegame-go/internal/config"
	"github.com/mcoot/scrabblegame-go/internal/factory"
	"github.com/mcoot/scrabblegame-go/internal/services/game"
	"github.com/mcoot/scrabblegame-go/internal/services/validator"
	redisstorage "github.com/mcoot/scrabblegame-go/internal/storage/redis"
)

func main() {
	var configFile, envFile string

	cmd := &cobra.Command{
		Use:          "scrabble-server",
		Short:        "Serve the Scrabble game API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile, envFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "Config file (yaml, toml or json)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "Dotenv file loaded before reading the environment")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// factoryConfig maps server configuration onto the application factory
func factoryConfig(cfg *config.Config, logger *slog.Logger) factory.Config {
	fc := factory.Config{
		DictionaryPath:   cfg.DictionaryPath,
		OracleURL:        cfg.OracleURL,
		OracleAttempts:   cfg.OracleAttempts,
		OracleCacheSize:  cfg.OracleCacheSize,
		GameConfig:       game.Config{OracleTimeout: cfg.SubmitTimeout},
		ValidatorOptions: validator.Options{CrossWords: cfg.CrossWords},
		Logger:           logger,
		StorageType:      cfg.Storage,
	}

	// Configure Redis if storage type is redis
	if cfg.Storage == config.StorageRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.GameTTL = cfg.RedisGameTTL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

func run(ctx context.Context, cfg *config.Config) error {
	// Set up logging
	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create application factory
	app, err := factory.New(ctx, factoryConfig(cfg, logger))
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return err
	}
	logger.Info("dictionary loaded", slog.Int("words", app.DictionaryService.WordCount()))

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		GameController:    app.GameController,
		DictionaryService: app.DictionaryService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			return err
		}
	}

	logger.Info("server stopped")
	return nil
}
