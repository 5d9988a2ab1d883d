package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/savannatrails/safari-backend/api/routes"
	"github.com/savannatrails/safari-backend/internal/builder"
	"github.com/savannatrails/safari-backend/internal/catalog"
	"github.com/savannatrails/safari-backend/internal/packages"
	"github.com/savannatrails/safari-backend/pkg/config"
	"github.com/savannatrails/safari-backend/pkg/db"
	"github.com/savannatrails/safari-backend/pkg/logger"
	"github.com/savannatrails/safari-backend/pkg/metrics"
	"github.com/savannatrails/safari-backend/pkg/migrate"
	"github.com/savannatrails/safari-backend/pkg/pubsub"
	"github.com/savannatrails/safari-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	var notifier *builder.Notifier
	if cfg.FeatureFlags.PublishEvents {
		pubsubClient, err := pubsub.NewClient(context.Background(), cfg.GCP, cfg.PubSub, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap pubsub", err)
			os.Exit(1)
		}
		defer func() {
			if err := pubsubClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing pubsub", err)
			}
		}()
		notifier = builder.NewNotifier(pubsubClient.PackageEventsPublisher(), logg)
	}

	catalogService := catalog.NewService(catalog.NewRepository(dbClient.DB()))
	packagesRepo := packages.NewRepository(dbClient.DB())
	packagesService := packages.NewService(packagesRepo)

	builderMetrics := metrics.NewBuilderMetrics(prometheus.DefaultRegisterer)
	builderService, err := builder.NewService(
		builder.NewRegistry(),
		catalogService,
		packagesRepo,
		redisClient,
		notifier,
		builderMetrics,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create builder service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, catalogService, builderService, packagesService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
