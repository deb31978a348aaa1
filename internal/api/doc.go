// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
Package api implements the HTTP layer of the dashboard: Chi routing,
middleware, the response envelope and the handlers that turn query
parameters into view computations over the published snapshot.

# Key Components

  - Handler: carries the snapshot manager, configuration, auth managers,
    response cache and performance monitor shared by every endpoint.
  - ViewQueryExecutor: the cache-first execution flow used by the read
    endpoints (parse filter, check cache, compute view, cache, respond).
  - Router: builds the Chi tree with per-group rate limits, security
    headers, Prometheus instrumentation and authentication.

# API Categories

  - Analytics: KPI sets and ranked/trend tables over the monthly
    aggregates, narrowed by the shared filter parameters.
  - RFM: customer segmentation summaries with segment, cluster and
    recency drill-down.
  - Basket: top SKUs and association-rule thresholding with per-SKU
    drill-down.
  - Quality: missingness, outlier and audit extracts.
  - Admin: snapshot reload and dataset status.
  - Export: CSV download of the campaign target list.

# Response Envelope

Every JSON endpoint responds with models.APIResponse: a status string,
the payload under data, and metadata carrying the server timestamp,
query time, cache state and the snapshot load time the payload was
computed from. Degraded payloads (missing optional dataset, absent
column) stay inside a 200 response with available=false and a reason;
only an unpublished snapshot yields 503.

# Caching

Responses are cached per endpoint and parameter set. The cache is
cleared whenever a new snapshot is published, so entries never outlive
the tables they were computed from.
*/
package api
