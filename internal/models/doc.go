// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
Package models defines the wire-level data structures of the Mercatus API.

This package contains the response envelope, the report view payloads and
the request bodies used by the HTTP layer. It is the single source of
truth for what the API emits.

Key Components:

  - APIResponse: Standardized response wrapper (status/data/metadata/error)
  - TableData: Wire form of a computed table with per-component availability
  - OverviewView, DriversView, PromotionsView, RFMView, BasketView,
    QualityView: the six report views, plus Bundle combining all of them
  - FiltersResponse / RFMFiltersResponse: filter option lists
  - ReloadResponse / HealthResponse: administrative and health payloads
  - LoginRequest / LoginResponse: JWT authentication

Degradation model:

Every table-shaped component is a TableData carrying its own Available
flag. A missing source column or optional dataset flips one component
to unavailable with a reason; the rest of the view still renders. KPI
fields are query.Scalar values and encode as {value, state} where state
is "ok", "no_value" or "undefined", so a client renders a placeholder
glyph instead of mistaking a sentinel for a real zero.

Usage Example - API Response:

	import "github.com/mercatus-io/mercatus/internal/models"

	// Success response
	response := models.APIResponse{
	    Status: "success",
	    Data:   view,
	    Metadata: models.Metadata{
	        Timestamp:   time.Now(),
	        QueryTimeMS: 4,
	    },
	}

	json.NewEncoder(w).Encode(response)

	// Error response
	errorResponse := models.APIResponse{
	    Status: "error",
	    Error: &models.APIError{
	        Code:    "VALIDATION_ERROR",
	        Message: "Invalid month range",
	        Details: map[string]interface{}{
	            "field": "ym_from",
	        },
	    },
	}

Usage Example - Table payloads:

	monthly, _ := snap.Table(store.DatasetMonthly)
	data := models.NewTableData(monthly)          // available, rows in column order
	gone := models.UnavailableTable("rfm_customer_table.csv not loaded")

Thread Safety:

All models are plain data structures: safe for concurrent reads, no
internal mutexes, immutable once handed to the encoder.

See Also:

  - internal/views: builders producing these payloads
  - internal/api: handlers wrapping them in APIResponse
  - internal/query: the Scalar type embedded in KPI sets
*/
package models
