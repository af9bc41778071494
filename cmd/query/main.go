package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/brightcart/shopchat/internal/client"
	"github.com/brightcart/shopchat/internal/config"
	"github.com/brightcart/shopchat/internal/domain"
	"github.com/brightcart/shopchat/internal/httpserver"
	logpkg "github.com/brightcart/shopchat/internal/logger"
	"github.com/brightcart/shopchat/internal/narrator"
	"github.com/brightcart/shopchat/internal/retrieval"
	"github.com/brightcart/shopchat/internal/transport/rest"
	"github.com/brightcart/shopchat/internal/usecase/dispatch"
	"github.com/brightcart/shopchat/internal/usecase/query"
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

	logger.Info("Starting query service",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.Query.HTTP.Port),
		zap.String("gateway_url", cfg.Query.GatewayURL),
		zap.Bool("generation", cfg.Query.Narrator.APIKey != ""),
		zap.Bool("retrieval", cfg.Query.Retrieval.Enabled),
	)

	upstreamTimeout := time.Duration(cfg.Query.UpstreamTimeoutSec) * time.Second
	gatewayClient := client.NewGateway(cfg.Query.GatewayURL, upstreamTimeout)

	var generator narrator.Generator
	if cfg.Query.Narrator.APIKey != "" {
		generator = narrator.NewOpenAIGenerator(&narrator.GeneratorConfig{
			APIKey:     cfg.Query.Narrator.APIKey,
			BaseURL:    cfg.Query.Narrator.BaseURL,
			Model:      cfg.Query.Narrator.Model,
			TimeoutSec: cfg.Query.Narrator.TimeoutSec,
			Logger:     logger,
		})
	}

	var retriever narrator.ContextProvider
	if cfg.Query.Retrieval.Enabled {
		retriever = buildRetriever(gatewayClient, upstreamTimeout, logger)
	}

	narr := narrator.New(gatewayClient, generator, retriever, cfg.Query.Retrieval.TopK)
	svc := query.New(gatewayClient, narr)

	r := httpserver.NewRouter("query", logger)
	rest.NewQueryServer(svc).Mount(r)

	httpserver.Run(cfg.Query.HTTP, r, logger)
}

// buildRetriever snapshots the full catalog through the gateway and
// indexes it. Retrieval is an aid only: any failure here just disables
// it for this process.
func buildRetriever(gw *client.Gateway, timeout time.Duration, logger *zap.Logger) narrator.ContextProvider {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	env, err := gw.Dispatch(ctx, dispatch.MethodGetProducts, map[string]any{})
	if err != nil || env.IsError() {
		logger.Warn("Could not snapshot catalog, retrieval disabled",
			zap.Error(err),
			zap.String("dispatch_error", env.Error),
		)
		return nil
	}

	products := domain.ProductsFromPayload(env.Result["products"])
	index, err := retrieval.NewProductIndex(products)
	if err != nil {
		logger.Warn("Could not build product index, retrieval disabled", zap.Error(err))
		return nil
	}

	logger.Info("Built product retrieval index", zap.Int("products", index.Size()))
	return index
}
