package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/fixtura"
	httpAdapter "github.com/aretw0/fixtura/pkg/adapters/http"
	"github.com/aretw0/fixtura/pkg/observability"
	"github.com/aretw0/fixtura/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mock-data HTTP API",
	Long: `Starts an HTTP server that generates test cases on request and keeps a
registry of named schemas (in memory, or in redis with --redis).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetString("port")
		}
		redisAddr, _ := cmd.Flags().GetString("redis")
		applyRedisFlag(redisAddr, cmd.Flags().Changed("redis"))

		store, closeStore, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
		opts := []fixtura.Option{
			fixtura.WithLogger(logger),
			fixtura.WithWorkers(cfg.Workers),
			fixtura.WithMetrics(metrics),
			fixtura.WithSource("http"),
			fixtura.WithMaxLength(cfg.Server.MaxLength),
		}
		if cfg.Seed != nil {
			opts = append(opts, fixtura.WithSeed(*cfg.Seed))
		}
		engine := fixtura.New(opts...)

		handler := httpAdapter.NewHandler(engine, store,
			httpAdapter.WithMaxCount(cfg.Server.MaxCount),
			httpAdapter.WithLimits(schema.Limits{
				MaxLength:   cfg.Server.MaxLength,
				MaxElements: cfg.Server.MaxElements,
			}),
			httpAdapter.WithMetricsHandler(promhttp.Handler()),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:              ":" + cfg.Server.Port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting fixtura server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err

		case sig := <-shutdown:
			logger.Info("Start shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("Error killing server", "error", err)
				}
			}
			logger.Info("fixtura server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for the schema registry (default in-memory)")
}
