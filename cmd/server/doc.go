// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
Package main is the entry point for the Mercatus server application.

Mercatus is a self-hosted analytics dashboard backend for e-commerce
performance data. It loads pre-aggregated CSV extracts (monthly KPIs,
customer RFM segmentation, SKU association rules, data-quality profiles)
into typed immutable in-memory tables and serves filterable report views
over a versioned JSON API.

# Application Architecture

The server implements a layered architecture with Suture v4 process supervision:

	RootSupervisor ("mercatus")
	├── DataSupervisor ("data-layer")
	│   └── RefreshService (if RELOAD_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (Chi router)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Dataset snapshot: CSV extracts parsed into immutable typed tables
 4. Authentication: session tokens over a single admin login, or no-auth mode
 5. Supervisor Tree: Suture v4 process supervision
 6. HTTP Server: Chi router with middleware stack

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Data
	DATA_DIR=/data               # Directory holding the CSV extracts
	RELOAD_INTERVAL=1m           # Background refresh cadence (0 disables)

	# Server
	PORT=8080                    # HTTP server port
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Authentication (choose one mode)
	AUTH_MODE=none               # basic or none
	JWT_SECRET=<32+ chars>       # Required for basic mode
	ADMIN_USERNAME=admin
	ADMIN_PASSWORD=<password>

# Datasets

The data directory holds one CSV per dataset. Only the primary extract
is mandatory:

	monthly_aggregates.csv                    # mandatory
	rfm_customer_table.csv                    # optional
	rfm_target_list.csv                       # optional
	sku_summary.csv                           # optional
	sku_pair_rules_top200.csv                 # optional
	missing_profile_current.csv               # optional
	outlier_profile_iqr_key_metrics.csv       # optional
	audit_top_orders_by_order_total_gbp.csv   # optional

Views backed by an absent optional dataset answer with an explicit
unavailable marker instead of an error. A primary extract without a
usable YearMonth column aborts startup.

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Waits for in-flight requests (10s timeout)
 3. Stops the background refresher
 4. Reports any services that failed to stop

# Usage Examples

Development (no auth):

	export AUTH_MODE=none
	export DATA_DIR=./extracts
	go run ./cmd/server

Production:

	export AUTH_MODE=basic
	export JWT_SECRET=$(openssl rand -base64 32)
	export ADMIN_USERNAME=admin ADMIN_PASSWORD=secure-password
	export DATA_DIR=/data
	./mercatus

Docker:

	docker run -d \
	  -v /srv/extracts:/data:ro \
	  -e AUTH_MODE=none \
	  -p 8080:8080 \
	  ghcr.io/mercatus-io/mercatus

# API Documentation

Swagger documentation is available at /swagger/index.html when the server
is running. The API is organized into categories:

  - Analytics: KPI sets, trends and rankings over the filtered monthly table
  - RFM: Customer segmentation drill-downs
  - Basket: SKU rankings and association rule thresholds
  - Quality: Missingness, outlier and audit profiles
  - Export: CSV downloads
  - Admin: Snapshot reload and dataset status
  - Core: Health checks, filter metadata, login

# See Also

  - internal/config: Configuration management
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
  - internal/store: Dataset loading and snapshot lifecycle
*/
package main
