// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

// Package main provides the Mercatus HTTP server
//
// Mercatus API serves filterable e-commerce report views computed from
// pre-aggregated warehouse extracts.
//
// @title Mercatus API
// @version 1.0
// @description Analytics dashboard backend for e-commerce performance extracts
// @description
// @description ## Features
// @description
// @description - **Filterable Report Views**: Six dashboard views (overview, drivers, promotions, RFM, basket, quality) recomputed per request from immutable snapshots
// @description - **Composable Filters**: Inclusive YearMonth range plus multi-select dimension filters, AND-composed and order-independent
// @description - **Sentinel-Aware KPIs**: Scalars carry an explicit valid/no-value/undefined state so missing data never renders as 0
// @description - **Association Rule Thresholds**: Support/confidence/lift lower bounds with data-dependent defaults and entity drill-down
// @description - **Hot Reload**: Admin-triggered or scheduled snapshot reloads with atomic swap; readers never block
// @description - **Data Export**: CSV download of the RFM target list
// @description
// @description ## Authentication
// @description
// @description With AUTH_MODE=basic all data endpoints require a session token issued by `/auth/login`, carried in an HTTP-only cookie or bearer header. AUTH_MODE=none disables authentication for isolated deployments.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Rate limit headers are included in responses: `X-RateLimit-Limit`, `X-RateLimit-Remaining`, `X-RateLimit-Reset`.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-08-25T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/mercatus-io/mercatus/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in cookie
// @name token
// @description Session token stored in HTTP-only cookie. Obtain via /auth/login endpoint.
//
// @tag.name Core
// @tag.description Core API endpoints for health checks, filter metadata and login
//
// @tag.name Analytics
// @tag.description KPI sets, monthly trends and top-N rankings computed from the filtered monthly aggregates
//
// @tag.name RFM
// @tag.description Customer recency/frequency/monetary segmentation drill-downs
//
// @tag.name Basket
// @tag.description SKU revenue rankings and association rule thresholds
//
// @tag.name Quality
// @tag.description Missingness, outlier and audit profiles from the upstream pipeline
//
// @tag.name Export
// @tag.description CSV export endpoints for external analysis
//
// @tag.name Admin
// @tag.description Administrative operations (snapshot reload, dataset status)
package main
