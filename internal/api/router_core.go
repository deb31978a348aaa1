// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package api

import (
	"net/http"

	"github.com/mercatus-io/mercatus/internal/auth"
	"github.com/mercatus-io/mercatus/internal/middleware"
)

// Router sets up HTTP routes using the Chi router.
type Router struct {
	handler       *Handler
	middleware    *auth.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new router with all routes configured
func NewRouter(handler *Handler, authMiddleware *auth.Middleware) *Router {
	// Create Chi middleware from the security config when available,
	// falling back to the secure defaults (empty CORS, 100 req/min)
	var chiMw *ChiMiddleware
	if handler != nil && handler.config != nil {
		chiMw = NewChiMiddlewareFromSecurity(&handler.config.Security)
	} else {
		chiMw = NewChiMiddleware(nil)
	}

	return &Router{
		handler:       handler,
		middleware:    authMiddleware,
		chiMiddleware: chiMw,
	}
}

// wrap applies the standard middleware stack (auth, RequestID, Compression,
// Prometheus) to a single handler. This is used by tests; SetupChi composes
// the same stack from Chi middlewares for the production route tree.
func (router *Router) wrap(handler http.HandlerFunc) http.HandlerFunc {
	return router.middleware.Authenticate(
		middleware.RequestID(
			middleware.Compression(
				middleware.PrometheusMetrics(handler),
			),
		),
	)
}
