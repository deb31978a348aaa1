// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
Package auth provides authentication for the admin endpoints.

The dashboard is read-only for anonymous users; only the admin surface
(dataset reload, dataset inspection) requires authentication, and only
when AUTH_MODE=basic is configured. This package implements that layer.

Key Components:

  - JWTManager: Token generation and validation using HMAC-SHA256
  - BasicAuthManager: HTTP Basic Authentication with bcrypt password hashing
  - Middleware: Authentication middleware dispatching on credential type
  - LockoutManager: In-memory brute-force lockout with exponential backoff

Authentication Modes:

The application supports two modes (configured via AUTH_MODE):

1. none (default):
  - All endpoints are open, including the admin surface
  - Suitable for deployments behind a trusted reverse proxy

2. basic:
  - A single admin account (ADMIN_USERNAME / ADMIN_PASSWORD)
  - Requests may carry Basic credentials directly, or a bearer token
    obtained from POST /auth/login (Authorization header or the
    HTTP-only token cookie)
  - Failed logins are tracked per username and per source IP; repeated
    failures lock the account temporarily

Usage:

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
	    return err
	}
	basicManager, err := auth.NewBasicAuthManager(&cfg.Security)
	if err != nil {
	    return err
	}
	mw := auth.NewMiddleware(jwtManager, basicManager, cfg.Security.AuthMode, cfg.Security.TrustedProxies)

	mux.HandleFunc("/api/v1/admin/reload", mw.Authenticate(handler.ReloadDatasets))

CORS, rate limiting, and security headers are not handled here; the chi
middleware stack in internal/api owns those concerns for every route,
authenticated or not.

Security Notes:

  - Passwords are hashed with bcrypt (cost 12) at startup
  - Tokens are signed with HMAC-SHA256 and carry a uuid jti
  - Username and password comparison both run on every attempt so
    timing does not reveal which one was wrong
  - Lockout state is in memory and resets on restart

See Also:

  - internal/api: route wiring and the login handler
  - internal/config: SecurityConfig and validation of auth settings
*/
package auth
