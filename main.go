package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eligibility-engine/config"
	httpLayer "eligibility-engine/http"
	"eligibility-engine/i18n"
	"eligibility-engine/observability"
	"eligibility-engine/repository"
	"eligibility-engine/service"
)

func main() {
	cfg := config.Load()
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("server exited")
}

func run(cfg config.Config, logger *slog.Logger) error {
	catalogCfg, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	catalog, err := repository.NewCatalogMemory(catalogCfg.Banks, catalogCfg.Products)
	if err != nil {
		return err
	}

	currency := catalogCfg.Currency
	if cfg.DefaultCurrency != "" {
		currency = cfg.DefaultCurrency
	}

	var cache repository.CacheRepository = repository.NewMemoryCache()
	if cfg.Cache.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.TTL)
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, estimates will not be cached until it recovers",
				"addr", cfg.Cache.RedisAddr, "error", err)
		}
		cancel()
		cache = redisCache
	}

	metrics := observability.NewEstimateMetrics("eligibility")

	translator, err := i18n.Default()
	if err != nil {
		return err
	}
	formatter, err := service.NewAmountFormatter(cfg.DefaultLocale)
	if err != nil {
		return err
	}

	eligibilityService := service.NewEligibilityService(catalog, cache, metrics)
	validator := service.NewInputBoundsValidator(catalog)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.RouterConfig{
		Eligibility: httpLayer.NewEligibilityHandler(eligibilityService, validator, formatter, translator, currency),
		Catalog:     httpLayer.NewCatalogHandler(eligibilityService),
		Format:      httpLayer.NewFormatHandler(formatter, translator, currency),
		Limiter:     rateLimiter,
		Translator:  translator,
		Metrics:     metrics.Handler(),
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("eligibility API listening",
			"addr", server.Addr,
			"banks", len(catalogCfg.Banks),
			"products", len(catalogCfg.Products),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}
