// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
Package services provides suture.Service wrappers for Mercatus components.

This package adapts application components to the suture v4 supervision
model, translating their lifecycle patterns (ListenAndServe, periodic
polling) into suture's context-aware Serve pattern.

# Overview

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

The wrappers handle:
  - Lifecycle translation to the Serve pattern
  - Graceful shutdown via context cancellation
  - Error propagation for supervisor restart decisions
  - Service identification via fmt.Stringer

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

Dataset Refresher (RefreshService):
  - Polls the data directory on a fixed interval
  - Reloads and swaps the snapshot only when a file changed
  - Invokes the swap callback so the response cache is cleared

# Usage Example

Creating and registering services:

	import (
	    "net/http"
	    "time"

	    "github.com/mercatus-io/mercatus/internal/supervisor"
	    "github.com/mercatus-io/mercatus/internal/supervisor/services"
	)

	func setupSupervisor(server *http.Server, mgr *store.Manager, onSwap func(*store.Snapshot)) {
	    tree, _ := supervisor.NewSupervisorTree(logger, config)

	    // HTTP server with 10s shutdown timeout
	    tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	    // Background refresher checking files every minute
	    tree.AddDataService(services.NewRefreshService(mgr, time.Minute, onSwap))

	    // Start supervision
	    tree.Serve(ctx)
	}

# Error Handling

Return values determine supervisor behavior:

	nil         -> Service stopped cleanly, will not restart
	error       -> Service crashed, supervisor will restart
	ctx.Err()   -> Shutdown requested, normal termination

The refresher treats a failed reload as a warning, not a crash: the
previous snapshot stays published and the next tick retries, so a
transient file error never burns supervisor restart budget.

# Service Identification

All services implement fmt.Stringer for logging:

	func (h *HTTPServerService) String() string {
	    return "http-server"
	}

Suture uses this for log messages:

	INFO http-server: starting
	INFO http-server: stopped
	ERROR http-server: restarting after failure

# Thread Safety

All service wrappers are safe for concurrent use:
  - Context cancellation is handled atomically
  - Multiple Serve calls are not supported (undefined behavior)

# See Also

  - internal/supervisor: SupervisorTree that manages these services
  - internal/store: snapshot manager the refresher drives
  - github.com/thejerf/suture/v4: Underlying supervision library
*/
package services
