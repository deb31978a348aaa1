// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/mercatus-io/mercatus/docs" // Import generated swagger docs
	"github.com/mercatus-io/mercatus/internal/api"
	"github.com/mercatus-io/mercatus/internal/auth"
	"github.com/mercatus-io/mercatus/internal/config"
	"github.com/mercatus-io/mercatus/internal/logging"
	"github.com/mercatus-io/mercatus/internal/store"
	"github.com/mercatus-io/mercatus/internal/supervisor"
	"github.com/mercatus-io/mercatus/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Mercatus with supervisor tree")
	logging.Info().
		Str("data_dir", cfg.Data.Dir).
		Str("auth_mode", cfg.Security.AuthMode).
		Str("environment", cfg.Server.Environment).
		Msg("Configuration loaded")

	// Load the initial dataset snapshot. A missing primary extract or a
	// primary extract without a usable YearMonth column is fatal
	// configuration; optional extracts degrade to unavailable views.
	storeMgr := store.NewManager(cfg.Data.Dir)
	if err := storeMgr.Load(); err != nil {
		logging.Fatal().Err(err).Str("data_dir", cfg.Data.Dir).Msg("Failed to load datasets")
	}
	logging.Info().Msg("Dataset snapshot published")

	var jwtManager *auth.JWTManager
	var basicAuth *auth.BasicAuthManager

	switch cfg.Security.AuthMode {
	case "basic":
		jwtManager, err = auth.NewJWTManager(&cfg.Security)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
		}
		basicAuth, err = auth.NewBasicAuthManager(
			cfg.Security.AdminUsername,
			cfg.Security.AdminPassword,
		)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize Basic Auth manager")
		}
		logging.Info().Msg("Authentication enabled (login with session tokens)")
	case "none":
		logging.Warn().Msg("============================================================")
		logging.Warn().Msg("  SECURITY WARNING: Authentication is DISABLED (AUTH_MODE=none)")
		logging.Warn().Msg("  ")
		logging.Warn().Msg("  All endpoints are publicly accessible without authentication!")
		logging.Warn().Msg("  This mode should ONLY be used for:")
		logging.Warn().Msg("    - Local development")
		logging.Warn().Msg("    - Completely isolated private networks")
		logging.Warn().Msg("  ")
		logging.Warn().Msg("  NEVER use AUTH_MODE=none in production or on public networks!")
		logging.Warn().Msg("============================================================")
	}

	authMiddleware := auth.NewMiddleware(
		jwtManager,
		basicAuth,
		cfg.Security.AuthMode,
		cfg.Security.TrustedProxies,
	)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := api.NewHandler(storeMgr, cfg, jwtManager, basicAuth)
	router := api.NewRouter(handler, authMiddleware)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Create supervisor tree; sutureslog bridges supervisor events into
	// zerolog through the slog adapter
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Data layer: background refresher re-checks the extract files and
	// swaps in a new snapshot when anything changed. RELOAD_INTERVAL=0
	// leaves reloads to the admin endpoint only.
	if cfg.Data.ReloadInterval > 0 {
		tree.AddDataService(services.NewRefreshService(storeMgr, cfg.Data.ReloadInterval, handler.OnSnapshotSwapped))
		logging.Info().Dur("interval", cfg.Data.ReloadInterval).Msg("Background dataset refresh enabled")
	} else {
		logging.Info().Msg("Background dataset refresh disabled (RELOAD_INTERVAL=0)")
	}

	// API layer
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
