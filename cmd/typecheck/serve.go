package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	httpAdapter "github.com/aretw0/typecheck/internal/adapters/http"
	"github.com/aretw0/typecheck/internal/adapters/redis"
	"github.com/aretw0/typecheck/internal/metrics"
	"github.com/aretw0/typecheck/internal/service"
	"github.com/aretw0/typecheck/pkg/adapters/memory"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the registered shapes over HTTP:

  GET  /shapes          list shapes
  GET  /shapes/{name}   describe one shape
  POST /check/{name}    check the request body (JSON or YAML)
  GET  /metrics         Prometheus metrics
  GET  /healthz         liveness

Verdicts are cached in a bounded in-memory LRU, or in Redis when --redis is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		cacheTTL, _ := cmd.Flags().GetDuration("cache-ttl")
		cacheEntries, _ := cmd.Flags().GetInt("cache-entries")

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		opts := []service.Option{
			service.WithLogger(logger),
			service.WithMetrics(metrics.NewRecorder(reg)),
		}
		if redisAddr != "" {
			cache := redis.New(redisAddr, os.Getenv("TYPECHECK_REDIS_PASSWORD"), 0, redis.WithTTL(cacheTTL))
			defer cache.Close()

			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := cache.Ping(pingCtx); err != nil {
				logger.Warn("redis unreachable, verdicts will not be cached until it recovers", "addr", redisAddr, "error", err)
			}
			opts = append(opts, service.WithCache(cache))
		} else {
			opts = append(opts, service.WithCache(memory.NewCache(memory.WithMaxEntries(cacheEntries))))
		}

		svc := service.New(shapes(), opts...)
		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           httpAdapter.NewHandler(svc, reg, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting typecheck server", "addr", srv.Addr, "shapes", len(svc.Shapes()))
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				return srv.Close()
			}
			logger.Info("server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", envOr("TYPECHECK_REDIS_ADDR", ""), "Redis address for the verdict cache (host:port)")
	serveCmd.Flags().Duration("cache-ttl", time.Hour, "Expiration of cached verdicts in Redis (0 keeps them)")
	serveCmd.Flags().Int("cache-entries", memory.DefaultMaxEntries, "Maximum number of verdicts kept by the in-memory cache")
}
