package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/ensigotrace/ensigotrace-backend/api/routes"
	"github.com/ensigotrace/ensigotrace-backend/internal/auth"
	"github.com/ensigotrace/ensigotrace-backend/internal/collections"
	"github.com/ensigotrace/ensigotrace-backend/internal/payments"
	"github.com/ensigotrace/ensigotrace-backend/internal/sales"
	"github.com/ensigotrace/ensigotrace-backend/pkg/auth/session"
	"github.com/ensigotrace/ensigotrace-backend/pkg/config"
	"github.com/ensigotrace/ensigotrace-backend/pkg/flutterwave"
	"github.com/ensigotrace/ensigotrace-backend/pkg/logger"
	"github.com/ensigotrace/ensigotrace-backend/pkg/metrics"
	"github.com/ensigotrace/ensigotrace-backend/pkg/redis"
	"github.com/ensigotrace/ensigotrace-backend/pkg/store"
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

	kv, err := openStore(cfg.Store)
	if err != nil {
		logg.Error(context.Background(), "failed to open store", err)
		os.Exit(1)
	}

	var closers []func() error
	closers = append(closers, kv.Close)
	defer func() {
		var closeErr error
		for _, close := range closers {
			closeErr = multierr.Append(closeErr, close())
		}
		if closeErr != nil {
			logg.Error(context.Background(), "error during shutdown", closeErr)
		}
	}()

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		closers = append(closers, redisClient.Close)
	} else {
		logg.Warn(context.Background(), "redis not configured, login rate limiting disabled")
	}

	var flwClient *flutterwave.Client
	if cfg.Flutterwave.PublicKey != "" {
		flwClient, err = flutterwave.NewClient(context.Background(), cfg.Flutterwave, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to configure flutterwave", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "flutterwave not configured, checkout disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	apiMetrics := metrics.NewAPIMetrics(registry)

	onCorrupt := func(key string, err error) {
		ctx := logg.WithField(context.Background(), "storage_key", key)
		logg.Error(ctx, "stored collection corrupt, reseeding defaults", err)
	}

	sessions := session.NewManager(kv, onCorrupt)

	authService, err := auth.NewService(auth.ServiceParams{
		Repo:     auth.NewRepository(kv, nil, onCorrupt),
		Sessions: sessions,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	collectionsService, err := collections.NewService(collections.NewRepository(kv, nil, onCorrupt))
	if err != nil {
		logg.Error(context.Background(), "failed to create collections service", err)
		os.Exit(1)
	}

	salesService, err := sales.NewService(sales.NewRepository(kv, nil, onCorrupt), apiMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create sales service", err)
		os.Exit(1)
	}

	paymentsService, err := payments.NewService(payments.ServiceParams{
		Sales:   salesService,
		Client:  flwClient,
		Logger:  logg,
		Metrics: apiMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create payments service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":          cfg.App.Env,
		"addr":         addr,
		"store_driver": cfg.Store.NormalizedDriver(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:      cfg,
			Logger:      logg,
			Store:       kv,
			Redis:       redisClient,
			Sessions:    sessions,
			Metrics:     apiMetrics,
			Gatherer:    registry,
			Auth:        authService,
			Collections: collectionsService,
			Sales:       salesService,
			Payments:    paymentsService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func openStore(cfg config.StoreConfig) (store.KV, error) {
	switch cfg.NormalizedDriver() {
	case config.StoreDriverSQLite:
		return store.NewSQLite(cfg.Path)
	default:
		return store.NewBadger(cfg.Path)
	}
}
