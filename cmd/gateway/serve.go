package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/go-mclib/gateway/internal/config"
	"github.com/go-mclib/gateway/internal/dispatch"
	"github.com/go-mclib/gateway/internal/gateway"
	"github.com/go-mclib/gateway/internal/metrics"
)

// shutdownTimeout bounds how long the metrics HTTP server is given to
// drain in-flight scrapes once shutdown begins.
const shutdownTimeout = 5 * time.Second

// newServeCmd builds the "serve" subcommand: the only long-running mode
// of the gateway binary.
func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve [addr]",
		Short: "Run the gateway, accepting connections until interrupted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if len(args) == 1 {
				cfg.Listen.Addr = args[0]
			}
			return serve(cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to configuration file (YAML)")
	return cmd
}

// serve wires the configured components together and runs the gateway
// listener and metrics endpoint until ctx is cancelled by an interrupt
// signal, per spec.md §6's exit-code contract: nil on graceful shutdown,
// non-nil on bind failure or a transport error the listener cannot
// recover from.
func serve(cfg *config.Config) error {
	logLevel := new(slog.LevelVar)
	logLevel.Set(config.ParseLogLevel(cfg.Log.Level))
	logger := newLogger(cfg.Log.Format, logLevel)

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	description := config.NewDescription(cfg.Status.MOTD)
	table := dispatch.Table{
		CompressionThreshold: cfg.Login.CompressionThreshold,
		Description:          description,
	}

	ln, err := gateway.NewListener(cfg.Listen.Addr, table, logger, gateway.WithListenerMetrics(collector))
	if err != nil {
		return fmt.Errorf("bind listener: %w", err)
	}

	logger.Info("gateway starting",
		slog.String("listen_addr", ln.Addr().String()),
		slog.String("metrics_addr", cfg.Metrics.Addr),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return ln.Run(gCtx)
	})

	if cfg.Metrics.Addr != "" {
		metricsSrv := newMetricsServer(cfg.Metrics, reg)
		g.Go(func() error {
			return runMetricsServer(gCtx, metricsSrv, logger)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("gateway exited with error: %w", err)
	}

	logger.Info("gateway stopped")
	return nil
}

// newLogger builds a slog.Logger writing to stderr in the configured
// format, backed by a shared LevelVar so the level can be adjusted
// without rebuilding the handler.
func newLogger(format string, level *slog.LevelVar) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// newMetricsServer builds the HTTP server exposing Prometheus metrics.
func newMetricsServer(cfg config.MetricsConfig, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// runMetricsServer serves metricsSrv until ctx is cancelled, then shuts
// it down within shutdownTimeout.
func runMetricsServer(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("metrics server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("metrics server: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shut down metrics server: %w", err)
		}
		return <-errCh
	}
}
