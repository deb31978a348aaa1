// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
Package supervisor provides process supervision for Mercatus using suture v4.

This package implements a small supervisor tree that manages the lifecycle
of the long-running services in the application. It provides Erlang/OTP-style
supervision with automatic restart, failure isolation, and graceful shutdown.

# Overview

The supervisor tree organizes services into two layers for failure isolation:

	RootSupervisor ("mercatus")
	├── DataSupervisor ("data-layer")
	│   └── RefreshService (if RELOAD_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

This hierarchy ensures that:
  - A crash in the background refresher never affects API availability;
    requests keep serving the last published snapshot
  - Each layer restarts independently with its own failure counting

# Key Features

Automatic Restart:
  - Crashed services are automatically restarted
  - Exponential backoff prevents restart storms
  - Configurable failure thresholds and decay rates

Graceful Shutdown:
  - Context cancellation triggers orderly shutdown
  - Configurable shutdown timeout per service
  - UnstoppedServiceReport for debugging hangs

Structured Logging:
  - Integration with slog for structured events
  - Logs service starts, stops, failures, and restarts
  - Event hooks via sutureslog adapter bridging into zerolog

# Usage Example

Basic setup in main.go:

	import (
	    "github.com/mercatus-io/mercatus/internal/logging"
	    "github.com/mercatus-io/mercatus/internal/supervisor"
	    "github.com/mercatus-io/mercatus/internal/supervisor/services"
	)

	func main() {
	    logger := logging.NewSlogLogger()
	    tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	    if err != nil {
	        logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	    }

	    tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	    tree.AddDataService(services.NewRefreshService(mgr, interval, onSwap))

	    // Start the tree (blocks until context canceled)
	    if err := tree.Serve(ctx); err != nil {
	        logging.Error().Err(err).Msg("Supervisor stopped")
	    }
	}

# Configuration

The TreeConfig controls restart behavior:

	config := supervisor.TreeConfig{
	    FailureThreshold: 5.0,              // Failures before backoff
	    FailureDecay:     30.0,             // Seconds for failures to decay
	    FailureBackoff:   15 * time.Second, // Backoff duration
	    ShutdownTimeout:  10 * time.Second, // Per-service shutdown timeout
	}

Default values match suture's production-ready defaults:
  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

# Service Interface

All services must implement suture.Service:

	type Service interface {
	    Serve(ctx context.Context) error
	}

Return behavior:
  - Return nil: Service stopped cleanly, will not be restarted
  - Return error: Service crashed, will be restarted
  - Context canceled: Shutdown requested, return promptly

# What Is NOT Supervised

The dataset snapshot itself is not a service: tables are immutable values
published through an atomic pointer by internal/store, so there is no
lifecycle to supervise. Only the refresher that polls the data directory
and the HTTP server are long-running.

# See Also

  - internal/supervisor/services: Service wrappers
  - github.com/thejerf/suture/v4: Underlying library
*/
package supervisor
