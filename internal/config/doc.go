// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
Package config provides centralized configuration management for Mercatus.

This package handles loading, validation, and parsing of configuration for
all application components. It ensures consistent configuration across the
backend services and provides sensible defaults for optional settings.

# Configuration Sources

Configuration is loaded with koanf and merged in priority order:

 1. Built-in defaults (lowest priority)
 2. YAML configuration file (config.yaml or CONFIG_PATH)
 3. Environment variables (highest priority)

# Configuration Structure

The package organizes configuration into logical groups:

  - DataConfig: dataset directory and reload behaviour
  - ServerConfig: HTTP server settings (host, port, timeout)
  - SecurityConfig: authentication, rate limiting, CORS
  - CacheConfig: response cache parameters
  - LoggingConfig: log level and output format

# Environment Variables

Dataset loading (DataConfig):
  - DATA_DIR: Directory containing the prepared CSV exports (default: /data)
  - RELOAD_INTERVAL: Background refresh interval, 0 disables (default: 1m)

HTTP Server (ServerConfig):
  - HOST: Bind address (default: 0.0.0.0)
  - PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Per-request timeout (default: 30s)
  - ENVIRONMENT: development or production (default: development)

Security (SecurityConfig):
  - AUTH_MODE: Authentication mode, none or basic (default: none)
  - JWT_SECRET: Session token signing secret (min 32 chars, required for basic)
  - SESSION_TIMEOUT: Session token lifetime (default: 24h)
  - ADMIN_USERNAME: Admin login username (required for basic)
  - ADMIN_PASSWORD: Admin login password (min 8 chars, required for basic)
  - RATE_LIMIT_REQUESTS: Requests allowed per window (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Disable rate limiting entirely (default: false)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - TRUSTED_PROXIES: Comma-separated trusted proxy IPs

Caching (CacheConfig):
  - CACHE_ENABLED: Enable the response cache (default: true)
  - CACHE_TYPE: Eviction strategy, ttl or lfu (default: ttl)
  - CACHE_TTL: Cache time-to-live (default: 5m)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line in log output (default: false)

# Usage Example

Basic configuration loading:

	import "github.com/mercatus-io/mercatus/internal/config"

	cfg, err := config.Load()
	if err != nil {
	    log.Fatalf("Failed to load config: %v", err)
	}

	fmt.Printf("Starting server on %s\n", cfg.Server.Addr())
	fmt.Printf("Datasets: %s\n", cfg.Data.Dir)

Testing with custom configuration:

	t.Setenv("PORT", "9090")
	t.Setenv("DATA_DIR", t.TempDir())

	cfg, err := config.Load()
	// Use cfg for testing

# Validation

The package performs validation at load time:

  - Required fields: DATA_DIR; JWT_SECRET and admin credentials when
    AUTH_MODE=basic
  - String length: JWT_SECRET ≥32 chars, ADMIN_PASSWORD ≥8 chars
  - Numeric ranges: PORT (1-65535), RATE_LIMIT_REQUESTS (1-100000)
  - Duration ranges: RELOAD_INTERVAL 0 or 5s-24h, CACHE_TTL 1s-24h
  - Placeholder detection: secrets containing REPLACE, CHANGEME or
    similar template values are rejected
  - Production hardening: AUTH_MODE=none and wildcard CORS with
    authentication are both rejected when ENVIRONMENT=production

# Security Best Practices

When configuring authentication:

 1. Use strong token secrets: minimum 32 characters, cryptographically
    random. Generate with: openssl rand -base64 32

 2. Use strong admin passwords: minimum 8 characters, mixed case +
    numbers + symbols

 3. Configure specific CORS origins in production:
    CORS_ORIGINS=https://dashboard.example.com

 4. Configure trusted proxies when running behind a reverse proxy:
    TRUSTED_PROXIES=127.0.0.1,10.0.0.0/8

# Thread Safety

The Config struct is immutable after Load() returns, making it safe for
concurrent access from multiple goroutines without synchronization.

# See Also

  - .env.example: Complete configuration template with all variables
  - README.md: User-facing configuration documentation
*/
package config
