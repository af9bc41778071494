package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/brightcart/shopchat/internal/config"
	"github.com/brightcart/shopchat/internal/httpserver"
	logpkg "github.com/brightcart/shopchat/internal/logger"
	"github.com/brightcart/shopchat/internal/repository/catalog"
	"github.com/brightcart/shopchat/internal/transport/rest"
	"github.com/brightcart/shopchat/internal/version"
)

func main() {
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting catalog service",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.Catalog.HTTP.Port),
		zap.String("data_file", cfg.Catalog.DataFile),
	)

	store, err := catalog.Load(cfg.Catalog.DataFile, logger)
	if err != nil {
		logger.Fatal("Failed to load product catalog", zap.Error(err))
	}

	r := httpserver.NewRouter("catalog", logger)
	rest.NewCatalogServer(store).Mount(r)

	httpserver.Run(cfg.Catalog.HTTP, r, logger)
}
