package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mockdata/internal/platform/config"
	"mockdata/internal/platform/httpserver"
	"mockdata/internal/platform/logger"
	platformmetrics "mockdata/internal/platform/metrics"
	"mockdata/internal/platform/middleware"
	platformredis "mockdata/internal/platform/redis"
	"mockdata/internal/provisioning"
	"mockdata/internal/provisioning/handler"
	provisioningmetrics "mockdata/internal/provisioning/metrics"
	"mockdata/pkg/platform/middleware/metadata"
	"mockdata/pkg/platform/middleware/requesttime"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Loading logic lives in internal/provisioning.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := provisioning.Deps{
		Logger:  log,
		Metrics: provisioningmetrics.New(reg),
	}

	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	var redisHealth pinger
	if redisClient != nil {
		defer redisClient.Close()
		redisHealth = redisClient
		deps.Redis = redisClient
		log.Info("redis snapshot source enabled", "key", cfg.Redis.Key)
	}

	prov, err := provisioning.Build(cfg, deps)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(requesttime.Middleware)
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.LatencyMiddleware(platformmetrics.New(reg)))

	handler.New(prov.Service, log).Register(r)
	r.Get("/health", healthHandler(prov.Coordinator, redisHealth))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// Warm the cache so the first request does not pay for acquisition. A
	// failure here is not fatal; the next request retries.
	go func() {
		if _, err := prov.Service.GetAll(ctx); err != nil {
			log.Warn("initial dataset load failed", "error", err)
		}
	}()

	log.Info("starting mockdata server", "addr", cfg.Server.Addr, "environment", cfg.Environment)
	return httpserver.ListenAndServe(ctx, httpserver.New(cfg.Server, r), cfg.Server.ShutdownTimeout, log)
}
