// @title       Barangay Animal Tracking API
// @version     1.0
// @description Registro de animales callejeros del barangay: animales, visitas, tablero y cuentas.
// @BasePath    /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barangay-animal-tracking/internal/bootstrap"
	"barangay-animal-tracking/internal/platform/config"
	"barangay-animal-tracking/internal/platform/logger"
	"barangay-animal-tracking/internal/platform/metrics"
	"barangay-animal-tracking/internal/platform/telemetry"
	"barangay-animal-tracking/internal/router"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:           "api",
		Short:         "HTTP API del registro de animales del barangay",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return err
			}
			if addr == "" {
				addr = cfg.Addr()
			}

			log := logger.New(logger.Options{
				Level:  logger.ParseLevel(cfg.Log.Level),
				Format: logger.ParseFormat(cfg.Log.Format),
				App:    cfg.Log.App,
			})
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := serve(ctx, cfg, addr, log); err != nil {
				log.Error("server stopped", map[string]any{"error": err.Error()})
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "dirección de escucha (default :$PORT)")

	return cmd
}

func serve(ctx context.Context, cfg config.Config, addr string, log logger.Logger) error {
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Log.App, cfg.OTELEndpoint)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	deps, err := bootstrap.Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = deps.Close() }()

	srv := &http.Server{
		Addr:         addr,
		Handler:      router.NewRouter(deps.RouterOptions(log, metrics.New())),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	return g.Wait()
}
