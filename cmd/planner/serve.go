package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rpgo/planning-engine/internal/api"
	"github.com/rpgo/planning-engine/internal/cache"
	"github.com/rpgo/planning-engine/internal/calculation"
	"github.com/rpgo/planning-engine/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the planning engines over HTTP",
		Long:  "Serve the planning engines over HTTP. Settings come from PORT, REDIS_ADDR, LOG_LEVEL, RATE_LIMIT, RATE_WINDOW, CACHE_TTL and CACHE_SWEEP.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := api.NewConfig()
			if err != nil {
				return err
			}
			logger := opts.logger
			if !cmd.Flags().Changed("log-level") {
				logger = newLogger(cfg.LogLevel)
			}
			return serve(cmd.Context(), cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *api.Config, logger *logrus.Logger) error {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)

	limiter := api.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	memory := cache.NewMemoryCache()
	var store cache.Cache = memory
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisCache(cfg.RedisAddr)
		defer redisCache.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			logger.WithError(err).WithField("addr", cfg.RedisAddr).Warn("redis unavailable, using in-memory cache")
		} else {
			store = redisCache
		}
	}

	planner := service.NewPlanner(engine, store, logger)
	planner.SetTTL(cfg.CacheTTL)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.CacheSweep, func() {
		logger.WithFields(logrus.Fields{
			"cache_entries_removed": memory.Sweep(),
			"rate_buckets_removed":  limiter.Cleanup(),
		}).Debug("housekeeping")
	}); err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := api.NewRouter(api.NewHandler(planner, engine, logger), limiter)
	server := api.NewServer(cfg.Addr(), router)

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		logger.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server exited")
	return nil
}
