// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/mercatus-io/mercatus/internal/models"
)

// TestSanitizeLogValue tests control character escaping for log safety
func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean string unchanged",
			input:    "company=Acme Ltd",
			expected: "company=Acme Ltd",
		},
		{
			name:     "newline escaped",
			input:    "line1\nline2",
			expected: "line1\\x0aline2",
		},
		{
			name:     "carriage return escaped",
			input:    "a\rb",
			expected: "a\\x0db",
		},
		{
			name:     "tab escaped",
			input:    "a\tb",
			expected: "a\\x09b",
		},
		{
			name:     "delete character escaped",
			input:    "a\x7fb",
			expected: "a\\x7fb",
		},
		{
			name:     "unicode preserved",
			input:    "café",
			expected: "café",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeLogValue(tt.input)
			if got != tt.expected {
				t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// TestGenerateETag tests ETag determinism and the FNV-1a vectors
func TestGenerateETag(t *testing.T) {
	t.Parallel()

	// FNV-1a 32-bit reference vectors
	if got := generateETag(nil); got != "811c9dc5" {
		t.Errorf("generateETag(nil) = %s, want 811c9dc5", got)
	}
	if got := generateETag([]byte("a")); got != "e40c292c" {
		t.Errorf("generateETag(\"a\") = %s, want e40c292c", got)
	}

	payload := []byte(`{"status":"success"}`)
	first := generateETag(payload)
	second := generateETag(payload)
	if first != second {
		t.Errorf("ETag not deterministic: %s vs %s", first, second)
	}

	other := generateETag([]byte(`{"status":"error"}`))
	if first == other {
		t.Error("Different payloads produced the same ETag")
	}
}

// TestGetIntParam tests integer query parameter extraction
func TestGetIntParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		key      string
		fallback int
		expected int
	}{
		{"valid value", "limit=42", "limit", 10, 42},
		{"negative value", "limit=-3", "limit", 10, -3},
		{"absent key", "", "limit", 10, 10},
		{"empty value", "limit=", "limit", 10, 10},
		{"non-numeric value", "limit=abc", "limit", 10, 10},
		{"float value falls back", "limit=2.5", "limit", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			got := getIntParam(req, tt.key, tt.fallback)
			if got != tt.expected {
				t.Errorf("getIntParam(%q) = %d, want %d", tt.query, got, tt.expected)
			}
		})
	}
}

// TestGetFloatParam tests float query parameter extraction
func TestGetFloatParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		key      string
		fallback float64
		expected float64
	}{
		{"valid value", "min_support=0.25", "min_support", 0.5, 0.25},
		{"integer value", "min_support=2", "min_support", 0.5, 2},
		{"absent key", "", "min_support", 0.5, 0.5},
		{"non-numeric value", "min_support=abc", "min_support", 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			got := getFloatParam(req, tt.key, tt.fallback)
			if got != tt.expected {
				t.Errorf("getFloatParam(%q) = %f, want %f", tt.query, got, tt.expected)
			}
		})
	}
}

// TestOptionalFloatParam tests nil-on-absence float extraction
func TestOptionalFloatParam(t *testing.T) {
	t.Parallel()

	t.Run("absent returns nil", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if got := optionalFloatParam(req, "recency_min"); got != nil {
			t.Errorf("Expected nil, got %v", *got)
		}
	})

	t.Run("unparseable returns nil", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?recency_min=soon", nil)
		if got := optionalFloatParam(req, "recency_min"); got != nil {
			t.Errorf("Expected nil, got %v", *got)
		}
	})

	t.Run("zero is a real bound", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?recency_min=0", nil)
		got := optionalFloatParam(req, "recency_min")
		if got == nil {
			t.Fatal("Expected a value, got nil")
		}
		if *got != 0 {
			t.Errorf("Expected 0, got %v", *got)
		}
	})

	t.Run("valid value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?recency_max=45.5", nil)
		got := optionalFloatParam(req, "recency_max")
		if got == nil {
			t.Fatal("Expected a value, got nil")
		}
		if *got != 45.5 {
			t.Errorf("Expected 45.5, got %v", *got)
		}
	})
}

// TestParseCommaSeparated tests comma-separated list parsing
func TestParseCommaSeparated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty string", "", nil},
		{"single value", "Acme Ltd", []string{"Acme Ltd"}},
		{"multiple values", "Champions,Loyal", []string{"Champions", "Loyal"}},
		{"whitespace trimmed", " Champions , Loyal ", []string{"Champions", "Loyal"}},
		{"empty segments dropped", "a,,b", []string{"a", "b"}},
		{"only separators", ",,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCommaSeparated(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("parseCommaSeparated(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestRespondError tests the error envelope shape
func TestRespondError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid filter", errors.New("boom"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %s, want application/json", ct)
	}

	env := decodeEnvelope(t, w)
	if env.Status != "error" {
		t.Errorf("Status = %s, want error", env.Status)
	}
	if env.Error == nil {
		t.Fatal("Expected an error payload")
	}
	if env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("Error code = %s, want VALIDATION_ERROR", env.Error.Code)
	}
	if env.Error.Message != "Invalid filter" {
		t.Errorf("Error message = %s, want Invalid filter", env.Error.Message)
	}
}

// TestRespondJSON_Headers tests caching headers on successful responses
func TestRespondJSON_Headers(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]interface{}{"ok": true},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=60" {
		t.Errorf("Cache-Control = %s, want public, max-age=60", cc)
	}
	if vary := w.Header().Get("Vary"); vary != "Accept-Encoding" {
		t.Errorf("Vary = %s, want Accept-Encoding", vary)
	}

	etag := w.Header().Get("ETag")
	if etag == "" {
		t.Fatal("Expected an ETag header")
	}
	if want := generateETag(w.Body.Bytes()); etag != want {
		t.Errorf("ETag = %s, want %s (hash of body)", etag, want)
	}
}
