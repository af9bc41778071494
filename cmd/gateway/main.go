package main

import (
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/brightcart/shopchat/internal/client"
	"github.com/brightcart/shopchat/internal/config"
	"github.com/brightcart/shopchat/internal/httpserver"
	logpkg "github.com/brightcart/shopchat/internal/logger"
	"github.com/brightcart/shopchat/internal/metrics"
	"github.com/brightcart/shopchat/internal/transport/rest"
	"github.com/brightcart/shopchat/internal/usecase/dispatch"
	"github.com/brightcart/shopchat/internal/usecase/enrich"
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

	logger.Info("Starting gateway service",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.Gateway.HTTP.Port),
		zap.String("catalog_url", cfg.Gateway.CatalogURL),
		zap.String("rating_url", cfg.Gateway.RatingURL),
	)

	upstreamTimeout := time.Duration(cfg.Gateway.UpstreamTimeoutSec) * time.Second
	catalogClient := client.NewCatalog(cfg.Gateway.CatalogURL, upstreamTimeout)
	ratingClient := client.NewRating(cfg.Gateway.RatingURL, upstreamTimeout)

	enricher := enrich.New(ratingClient, logger).
		WithLookupTimeout(time.Duration(cfg.Gateway.RatingLookupTimeoutSec) * time.Second)
	dispatcher := dispatch.New(catalogClient, enricher, logger)

	metrics.RegisterDomainMetrics()

	r := httpserver.NewRouter("gateway", logger)
	rest.NewGatewayServer(dispatcher).Mount(r)

	httpserver.Run(cfg.Gateway.HTTP, r, logger)
}
