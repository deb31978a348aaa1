// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance with custom validators and user-friendly error
// messages. It integrates with the application's API error format for consistent
// error responses.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Custom yearmonth validator for YYYY-MM period keys
//   - Comprehensive error translation to human-readable messages
//   - APIError conversion matching the application's error format
//   - Future v11 compatibility with WithRequiredStructEnabled
//
// # Quick Start
//
//	type RulesRequest struct {
//	    MinSupport    float64 `validate:"gte=0,lte=1"`
//	    MinConfidence float64 `validate:"gte=0,lte=1"`
//	    MinLift       float64 `validate:"gte=0"`
//	    TopN          int     `validate:"omitempty,min=1,max=100"`
//	}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    req := parseRulesRequest(r)
//
//	    if verr := validation.ValidateStruct(&req); verr != nil {
//	        apiErr := verr.ToAPIError()
//	        respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	        return
//	    }
//
//	    // proceed with valid request
//	}
//
// # Common Validation Tags
//
// String validations:
//   - required: Field must not be empty
//   - min=n: Minimum length n characters
//   - max=n: Maximum length n characters
//
// Numeric validations:
//   - gte=n: Greater than or equal to n
//   - lte=n: Less than or equal to n
//   - gt=n: Greater than n
//   - lt=n: Less than n
//   - min=n: Minimum value n
//   - max=n: Maximum value n
//
// Enum validations:
//   - oneof=a b c: Must be one of the specified values
//
// Period validations:
//   - yearmonth: Valid YYYY-MM period key (e.g. "2024-03", months 01-12)
//
// Apply yearmonth to slices with dive:
//
//	Months []string `validate:"omitempty,dive,yearmonth"`
//
// # Error Types
//
// ValidationError represents a single field validation failure:
//
//	type ValidationError struct {
//	    Field()   string      // Struct field name
//	    Tag()     string      // Validation tag that failed
//	    Param()   string      // Tag parameter (e.g., "100" for max=100)
//	    Value()   interface{} // Actual value that failed
//	    Error()   string      // Human-readable message
//	}
//
// RequestValidationError aggregates multiple field errors:
//
//	type RequestValidationError struct {
//	    Errors() []ValidationError
//	    Error()  string           // Combined message
//	    ToAPIError() *APIError    // Convert to API error format
//	}
//
// # API Error Integration
//
// The ToAPIError method produces errors matching the application format:
//
//	// Single field error
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "Since must be a period in YYYY-MM format",
//	    "details": {"field": "Since", "tag": "yearmonth", "value": "Jan 2024"}
//	}
//
//	// Multiple field errors
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "MinSupport: must be less than or equal to 1; TopN: must be at most 100",
//	    "details": {
//	        "fields": [
//	            {"field": "MinSupport", "tag": "lte", "message": "..."},
//	            {"field": "TopN", "tag": "max", "message": "..."}
//	        ]
//	    }
//	}
//
// # Error Message Translation
//
// Human-readable messages are generated for common validation tags:
//
//	required   -> "Username is required"
//	yearmonth  -> "Since must be a period in YYYY-MM format"
//	min=8      -> "Password must be at least 8 characters"
//	max=100    -> "TopN must be at most 100"
//	gte=0      -> "MinLift must be greater than or equal to 0"
//	lte=1      -> "MinSupport must be less than or equal to 1"
//	oneof=a b  -> "SortBy must be one of: a b"
//
// # Struct Tag Examples
//
// Trend filter validation:
//
//	type TrendRequest struct {
//	    Months []string `validate:"omitempty,dive,yearmonth"`
//	    Since  string   `validate:"omitempty,yearmonth"`
//	    Limit  int      `validate:"min=0,max=100"`
//	}
//
// Login validation:
//
//	type LoginRequest struct {
//	    Username string `validate:"required,min=1,max=100"`
//	    Password string `validate:"required,min=8,max=200"`
//	}
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use:
//
//	validate := validation.GetValidator()  // Thread-safe
//	err := validation.ValidateStruct(&req) // Thread-safe
//
// # Performance
//
// The validator caches struct reflection information:
//   - First validation of a struct type: ~1ms (reflection + caching)
//   - Subsequent validations: ~10us (cached)
//   - Memory: ~500 bytes per cached struct type
//
// # See Also
//
//   - internal/api: Request handlers using validation
//   - github.com/go-playground/validator/v10: Underlying library
package validation
