// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

// Package api provides HTTP request validation structs with go-playground/validator tags.
// These structs are used to validate incoming API request parameters before processing.
//
// The validation tags follow the go-playground/validator v10 syntax:
//   - required: field must be present and non-zero
//   - min,max: numeric or string length bounds
//   - oneof: value must be one of the specified options
//   - yearmonth: value must be a calendar period in YYYY-MM format
//   - omitempty: skip validation if field is empty/zero
//
// Example usage:
//
//	req := FilterRequestValidation{
//	    YMFrom: r.URL.Query().Get("ym_from"),
//	    YMTo:   r.URL.Query().Get("ym_to"),
//	    Coupon: r.URL.Query().Get("coupon"),
//	}
//	if err := validateRequest(&req); err != nil {
//	    respondError(w, http.StatusBadRequest, err.Code, err.Message, nil)
//	    return
//	}
package api

// FilterRequestValidation represents the validated filter parameters shared
// by the analytics endpoints. Dimension selections (company, brand, shop,
// country, campaign) are comma-separated free text matched against the
// snapshot and need no validation here.
//
// Fields:
//   - YMFrom: Start of the month range, inclusive (YYYY-MM)
//   - YMTo: End of the month range, inclusive (YYYY-MM)
//   - Coupon: Coupon usage filter ("true" or "false")
type FilterRequestValidation struct {
	YMFrom string `validate:"omitempty,yearmonth"`
	YMTo   string `validate:"omitempty,yearmonth"`
	Coupon string `validate:"omitempty,oneof=true false"`
}

// LimitRequestValidation represents the validated limit parameter used by
// the ranking endpoints (top brands, top countries, campaign revenue).
//
// Fields:
//   - Limit: Maximum ranked rows to return (1-100, default per endpoint)
type LimitRequestValidation struct {
	Limit int `validate:"min=1,max=100"`
}

// ThresholdRequestValidation represents the validated association rule
// thresholds for the basket endpoints. Support and confidence are
// proportions; lift has no upper bound.
//
// Fields:
//   - MinSupport: Minimum rule support (0-1, default from rule metadata)
//   - MinConfidence: Minimum rule confidence (0-1, default from rule metadata)
//   - MinLift: Minimum rule lift (>= 0, default from rule metadata)
type ThresholdRequestValidation struct {
	MinSupport    float64 `validate:"min=0,max=1"`
	MinConfidence float64 `validate:"min=0,max=1"`
	MinLift       float64 `validate:"min=0"`
}

// RelatedRulesValidation represents the validated query parameters for
// /basket/rules/related.
//
// Fields:
//   - Entity: Required SKU or brand name appearing in the rule table (1-200 characters)
type RelatedRulesValidation struct {
	Entity string `validate:"required,min=1,max=200"`
}

// LoginRequestValidation represents the validated request body for the /auth/login endpoint.
// Note: This is named differently from models.LoginRequest to avoid conflicts.
//
// Fields:
//   - Username: Required user login name
//   - Password: Required user password
//   - RememberMe: Optional flag to extend session duration
type LoginRequestValidation struct {
	Username   string `validate:"required,min=1"`
	Password   string `validate:"required,min=1"`
	RememberMe bool
}
