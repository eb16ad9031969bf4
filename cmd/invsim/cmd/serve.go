package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rpgo/investment-simulator/internal/calculation"
	"github.com/rpgo/investment-simulator/internal/config"
	"github.com/rpgo/investment-simulator/internal/repository"
	"github.com/rpgo/investment-simulator/internal/server"
	"github.com/rpgo/investment-simulator/internal/service"
	"github.com/spf13/cobra"
)

const redisPingTimeout = 5 * time.Second

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		cfgFile string
		addr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP simulation API",
		Long: `Start the HTTP API.

Routes:
  POST /v1/external/investment-simulation   run a simulation (?page=&perPage= to page the ledger)
  GET  /healthz                             liveness probe

Without --config the built-in defaults are used (listen on :8080, in-memory
result cache, 60 requests per minute per client).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultServerConfig()
			if cfgFile != "" {
				var err error
				if cfg, err = config.LoadServerConfig(cfgFile); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("addr") {
				cfg.HTTP.Addr = addr
			}
			if root.verbose {
				cfg.Log.Level = "debug"
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format = root.logFormat
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, newLogger(cmd.ErrOrStderr(), cfg.Log.SlogLevel(), cfg.Log.Format))
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Server config file (yaml, toml or json)")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address, overrides http.addr")
	return cmd
}

func runServe(ctx context.Context, cfg *config.ServerConfig, logger *slog.Logger) error {
	cache, closeCache, err := openCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	calcLogger := calculation.NewSlogLogger(logger)
	engine := calculation.NewSimulationEngine()
	engine.Debug = logger.Enabled(ctx, slog.LevelDebug)
	engine.SetLogger(calcLogger)

	svc := service.NewSimulationService(engine, cache, calcLogger)
	return server.New(cfg, svc, logger).Run(ctx)
}

// openCache builds the configured result cache. The returned func releases it.
func openCache(ctx context.Context, cfg *config.ServerConfig, logger *slog.Logger) (repository.CacheRepository, func(), error) {
	ttl := cfg.Durations().CacheTTL

	switch cfg.Cache.Backend {
	case config.CacheBackendMemory:
		mem := repository.NewMemoryCache(ttl)
		go sweepLoop(ctx, mem, ttl, logger)
		logger.Info("using in-memory result cache", "ttl", ttl)
		return mem, func() {}, nil

	case config.CacheBackendRedis:
		rc := repository.NewRedisCache(repository.RedisOptions{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
			TTL:      ttl,
		})
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := rc.Ping(pingCtx); err != nil {
			_ = rc.Close()
			return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.Cache.RedisAddr, err)
		}
		logger.Info("using redis result cache", "addr", cfg.Cache.RedisAddr, "db", cfg.Cache.RedisDB, "ttl", ttl)
		return rc, func() {
			if err := rc.Close(); err != nil {
				printError("close redis", err)
			}
		}, nil

	default:
		logger.Info("result cache disabled")
		return repository.NopCache{}, func() {}, nil
	}
}

func sweepLoop(ctx context.Context, mem *repository.MemoryCache, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := mem.Sweep(); n > 0 {
				logger.Debug("swept expired cache entries", "removed", n, "remaining", mem.Len())
			}
		case <-ctx.Done():
			return
		}
	}
}
