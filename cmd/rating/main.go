package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/brightcart/shopchat/internal/config"
	"github.com/brightcart/shopchat/internal/httpserver"
	logpkg "github.com/brightcart/shopchat/internal/logger"
	"github.com/brightcart/shopchat/internal/metrics"
	"github.com/brightcart/shopchat/internal/repository/rating"
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

	logger.Info("Starting rating service",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.Rating.HTTP.Port),
		zap.String("driver", cfg.Rating.Driver),
	)

	var store rating.Store
	switch cfg.Rating.Driver {
	case "memory":
		store, err = rating.LoadMemory(cfg.Rating.DataFile, logger)
		if err != nil {
			logger.Fatal("Failed to load ratings", zap.Error(err))
		}
	case "redis":
		redisStore, err := rating.NewRedis(rating.RedisConfig{
			Addrs:     cfg.Rating.Redis.Addrs,
			Username:  cfg.Rating.Redis.Username,
			Password:  cfg.Rating.Redis.Password,
			KeyPrefix: cfg.Rating.Redis.KeyPrefix,
		})
		if err != nil {
			logger.Fatal("Failed to create redis rating store", zap.Error(err))
		}
		readiness := time.Duration(cfg.Rating.Redis.ReadinessTimeoutSec) * time.Second
		if err := redisStore.WaitForReady(context.Background(), readiness); err != nil {
			logger.Fatal("Redis not ready", zap.Error(err))
		}
		logger.Info("Connected to redis")
		store = redisStore
	default:
		logger.Fatal("Unknown rating driver", zap.String("driver", cfg.Rating.Driver))
	}
	defer store.Close()

	metrics.RegisterDomainMetrics()

	r := httpserver.NewRouter("rating", logger)
	rest.NewRatingServer(store).Mount(r)

	httpserver.Run(cfg.Rating.HTTP, r, logger)
}
