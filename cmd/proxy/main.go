package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Belphemur/AniWiki/internal/client"
	"github.com/Belphemur/AniWiki/internal/config"
	grpcserver "github.com/Belphemur/AniWiki/internal/grpc"
	"github.com/Belphemur/AniWiki/internal/metrics"
	"github.com/Belphemur/AniWiki/internal/server"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	logger.Info().
		Str("catalog_base_url", cfg.CatalogBaseURL).
		Str("proxy_connection_string", cfg.ProxyConnectionString).
		Int("server_port", cfg.Server.Port).
		Str("server_address", cfg.Server.Address).
		Int("rate_limit_per_second", cfg.RateLimit.PerSecond).
		Msg("Application started with configuration")

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			logger.Error().Err(err).Msg("Failed to initialize Sentry, continuing without error reporting")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	catalog := client.NewClient(cfg)
	httpServer := server.NewHTTPServer(cfg.Server.Address, cfg.Server.Port, server.NewRouter(catalog))

	errCh := make(chan error, 3)

	// Start Prometheus metrics HTTP server
	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	// Start the gRPC ops listener
	var opsServer *grpcserver.Server
	if cfg.GRPC.Enabled {
		listener, err := grpcserver.Listen(cfg.Server.Address, cfg.GRPC.Port)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create gRPC listener")
		}
		opsServer = grpcserver.NewGRPCServer()
		go func() {
			logger.Info().Str("address", listener.Addr().String()).Msg("Starting gRPC ops server")
			if err := opsServer.Serve(listener); err != nil {
				errCh <- err
			}
		}()
	}

	go func() {
		logger.Info().Str("address", httpServer.Addr).Msg("Starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		logger.Error().Err(err).Msg("Server error, shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if opsServer != nil {
		opsServer.Shutdown()
	}
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to shutdown HTTP server")
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown metrics server")
		}
	}

	logger.Info().Msg("Server stopped gracefully")
}
