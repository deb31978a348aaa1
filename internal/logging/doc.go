// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

// Package logging provides centralized zerolog-based structured logging for Mercatus.
//
// This package implements a unified logging layer using zerolog, providing
// zero-allocation structured JSON logging for production and human-readable
// console output for development.
//
// # Overview
//
// The package provides:
//   - Zero-allocation structured logging via zerolog
//   - JSON output format for production (machine-parseable)
//   - Console output format for development (human-readable)
//   - Global logger configuration from the service config
//   - Context-aware logging with request/correlation ID propagation
//   - slog adapter for suture v4 supervision tree integration
//   - Security logging for authentication events with data sanitization
//
// # Quick Start
//
//	import "github.com/mercatus-io/mercatus/internal/logging"
//
//	// Initialize at application startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	// Log messages
//	logging.Info().Str("data_dir", dir).Msg("Loading datasets")
//	logging.Error().Err(err).Msg("Snapshot reload failed")
//
//	// With context (request ID from middleware)
//	logging.Ctx(ctx).Info().Int("rows", n).Msg("Filter applied")
//
// # Configuration
//
// Settings come from the LOG_LEVEL, LOG_FORMAT, and LOG_CALLER environment
// variables via the config package:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller info (default: false)
//
// # Component Loggers
//
// Long-lived components hold a child logger carrying their name:
//
//	log := logging.WithComponent("store")
//	log.Info().Str("dataset", "monthly_aggregates").Int("rows", rows).Msg("Dataset loaded")
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// Use structured fields instead of string formatting:
//
//	logging.Info().Str("dataset", name).Int("rows", n).Msg("loaded")  // Correct
//	logging.Info().Msgf("loaded %d rows from %s", n, name)            // Avoid
package logging
