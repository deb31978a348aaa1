// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from environment
// variables and an optional config file.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Configuration Categories:
//
//  1. Data: warehouse extract directory and background refresh cadence
//  2. Server: HTTP server settings (port, host, timeout, environment)
//  3. Security: authentication mode, rate limiting, CORS
//  4. Cache: response cache toggle and TTL
//  5. Logging: log level and output format
//
// Example - Load configuration from environment:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	// cfg.Data.Dir, cfg.Server.Port, etc. are now populated
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Data     DataConfig     `koanf:"data"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Cache    CacheConfig    `koanf:"cache"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DataConfig holds the dataset directory and refresh settings.
//
// Environment Variables:
//   - DATA_DIR: Directory holding the CSV extracts (default: /data)
//   - RELOAD_INTERVAL: How often the background refresher re-checks the
//     extract files; 0 disables background refresh (default: 1m)
type DataConfig struct {
	Dir            string        `koanf:"dir"`
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// ServerConfig holds the HTTP server settings.
//
// Environment Variables:
//   - PORT: Listen port (default: 8080)
//   - HOST: Bind address (default: 0.0.0.0)
//   - HTTP_TIMEOUT: Read/write timeout (default: 30s)
//   - ENVIRONMENT: "development", "staging" or "production"
//     (default: development)
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds authentication and request-protection settings.
//
// Environment Variables:
//   - AUTH_MODE: "none" or "basic" (default: none)
//   - JWT_SECRET: HMAC secret for session tokens (required for basic)
//   - SESSION_TIMEOUT: Token lifetime (default: 24h)
//   - ADMIN_USERNAME / ADMIN_PASSWORD: The dashboard login (basic mode)
//   - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW: Per-IP request budget
//   - DISABLE_RATE_LIMIT: Turn rate limiting off entirely
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
//   - TRUSTED_PROXIES: Comma-separated proxy CIDRs for client IPs
type SecurityConfig struct {
	AuthMode          string        `koanf:"auth_mode"`
	JWTSecret         string        `koanf:"jwt_secret"`
	SessionTimeout    time.Duration `koanf:"session_timeout"`
	AdminUsername     string        `koanf:"admin_username"`
	AdminPassword     string        `koanf:"admin_password"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// AuthEnabled reports whether requests must carry a session token.
func (s SecurityConfig) AuthEnabled() bool {
	return s.AuthMode != "none"
}

// CacheConfig holds the response cache settings.
//
// Environment Variables:
//   - CACHE_ENABLED: Toggle the response cache (default: true)
//   - CACHE_TYPE: Eviction strategy, ttl or lfu (default: ttl)
//   - CACHE_TTL: How long computed views are served from cache
//     (default: 5m)
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	Type    string        `koanf:"type"`
	TTL     time.Duration `koanf:"ttl"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load loads and validates the configuration. It is the single entry
// point used by cmd/server.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
