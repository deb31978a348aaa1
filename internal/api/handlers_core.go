// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package api

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/mercatus-io/mercatus/internal/auth"
	"github.com/mercatus-io/mercatus/internal/frame"
	"github.com/mercatus-io/mercatus/internal/metrics"
	"github.com/mercatus-io/mercatus/internal/models"
	"github.com/mercatus-io/mercatus/internal/query"
	"github.com/mercatus-io/mercatus/internal/store"
	"github.com/mercatus-io/mercatus/internal/views"
)

// This file contains core API endpoints for the Mercatus application.
// These handlers provide the shared filter machinery for the dashboard plus
// the endpoints that do not belong to a single report view.
//
// Endpoints in this file:
//   - Filters: Filter options derived from the published snapshot
//   - Login: JWT authentication
//
// All handlers follow a consistent pattern:
//  1. Method validation (GET/POST)
//  2. Parameter parsing and validation
//  3. View computation against the published snapshot
//  4. JSON response with metadata

// requireMethod validates HTTP method and returns true if valid, false if error was sent
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return false
	}
	return true
}

// requireSnapshot fetches the published snapshot, sending a 503 and
// returning false when none is available. A snapshot is missing only
// before the first successful load; reload failures keep the previous
// snapshot published.
func (h *Handler) requireSnapshot(w http.ResponseWriter) (*store.Snapshot, bool) {
	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "SNAPSHOT_UNAVAILABLE", "No dataset snapshot available", nil)
		return nil, false
	}

	snap, ok := h.store.Current()
	if !ok {
		respondError(w, http.StatusServiceUnavailable, "SNAPSHOT_UNAVAILABLE", "No dataset snapshot available", nil)
		return nil, false
	}

	return snap, true
}

// filterParams is the canonical form of the shared filter parameters.
// The struct keys the response cache, so two requests spelling the same
// filters differently (parameter order, whitespace) produce one entry.
type filterParams struct {
	YMFrom    string   `json:"ym_from"`
	YMTo      string   `json:"ym_to"`
	Companies []string `json:"companies,omitempty"`
	Brands    []string `json:"brands,omitempty"`
	Shops     []string `json:"shops,omitempty"`
	Countries []string `json:"countries,omitempty"`
	Campaigns []string `json:"campaigns,omitempty"`
	Coupon    string   `json:"coupon,omitempty"`
}

// buildFilterParams parses the shared filter parameters from the query
// string. Month bounds default to the full range of the snapshot, so an
// unfiltered request and an explicit full-range request share a cache
// entry. Returns a validation error for malformed months or coupon
// values.
func buildFilterParams(r *http.Request, snap *store.Snapshot) (filterParams, *models.APIError) {
	q := r.URL.Query()

	params := filterParams{
		YMFrom:    q.Get("ym_from"),
		YMTo:      q.Get("ym_to"),
		Companies: parseCommaSeparated(q.Get("company")),
		Brands:    parseCommaSeparated(q.Get("brand")),
		Shops:     parseCommaSeparated(q.Get("shop")),
		Countries: parseCommaSeparated(q.Get("country")),
		Campaigns: parseCommaSeparated(q.Get("campaign")),
		Coupon:    q.Get("coupon"),
	}

	validationReq := FilterRequestValidation{
		YMFrom: params.YMFrom,
		YMTo:   params.YMTo,
		Coupon: params.Coupon,
	}
	if apiErr := validateRequest(&validationReq); apiErr != nil {
		return filterParams{}, apiErr
	}

	from, to := snap.Filters().MonthBounds()
	if params.YMFrom == "" {
		params.YMFrom = from
	}
	if params.YMTo == "" {
		params.YMTo = to
	}

	return params, nil
}

// spec converts the parsed parameters into the predicate set applied to
// the monthly table. Predicates for absent columns are skipped at apply
// time, so a spec built here never fails against a degraded snapshot.
func (p filterParams) spec() query.Spec {
	var spec query.Spec

	if p.YMFrom != "" || p.YMTo != "" {
		rp := &query.RangePredicate{Column: store.ColYearMonth}
		if p.YMFrom != "" {
			rp.Lower = frame.Str(p.YMFrom)
		}
		if p.YMTo != "" {
			rp.Upper = frame.Str(p.YMTo)
		}
		spec.Range = rp
	}

	dims := []query.SetPredicate{
		{Column: store.ColCompany, Selected: p.Companies},
		{Column: store.ColBrands, Selected: p.Brands},
		{Column: store.ColShop, Selected: p.Shops},
		{Column: store.ColShippingCountry, Selected: p.Countries},
		{Column: store.ColCampaignType, Selected: p.Campaigns},
	}
	for _, d := range dims {
		if len(d.Selected) > 0 {
			spec.Sets = append(spec.Sets, d)
		}
	}

	if p.Coupon != "" {
		spec.Sets = append(spec.Sets, query.SetPredicate{
			Column:   store.ColHasCoupon,
			Selected: []string{p.Coupon},
		})
	}

	return spec
}

// Filters returns the filter options supported by the published snapshot
//
// @Summary Get filter options
// @Description Returns the months, companies, brands, shops, countries and campaign types present in the primary dataset, plus per-dataset availability. Clients build their filter controls from this single request.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.FiltersResponse} "Filter options retrieved successfully"
// @Failure 503 {object} models.APIResponse "No dataset snapshot available"
// @Router /api/v1/filters [get]
func (h *Handler) Filters(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.ExecuteSnapshot(w, r, "Filters", nil, func(snap *store.Snapshot) interface{} {
		return views.Filters(snap)
	})
}

// Login handles user authentication requests
//
// @Summary Authenticate user
// @Description Authenticates user with username and password, returns JWT token in HTTP-only cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.APIResponse{data=models.LoginResponse} "Authentication successful"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Failure 401 {object} models.APIResponse "Invalid credentials"
// @Failure 403 {object} models.APIResponse "Authentication disabled"
// @Failure 429 {object} models.APIResponse "Account temporarily locked"
// @Failure 500 {object} models.APIResponse "Internal server error"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	req, err := h.parseAndValidateLoginRequest(w, r)
	if err != nil {
		return
	}

	if !h.validateAuthConfiguration(w) {
		return
	}

	if !h.checkLockout(w, r, req.Username) {
		return
	}

	if !h.authenticateCredentials(w, r, req) {
		return
	}

	h.generateAndSendToken(w, r, req)
}

// parseAndValidateLoginRequest parses and validates login request body
func (h *Handler) parseAndValidateLoginRequest(w http.ResponseWriter, r *http.Request) (*models.LoginRequest, error) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err)
		return nil, err
	}

	validationReq := LoginRequestValidation{
		Username:   req.Username,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	}
	if apiErr := validateRequest(&validationReq); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return nil, fmt.Errorf("%s: %s", apiErr.Code, apiErr.Message)
	}

	return &req, nil
}

// validateAuthConfiguration checks if JWT authentication is properly configured
func (h *Handler) validateAuthConfiguration(w http.ResponseWriter) bool {
	if h.config == nil || !h.config.Security.AuthEnabled() {
		respondError(w, http.StatusForbidden, "AUTH_DISABLED", "Authentication is disabled", nil)
		return false
	}

	if h.jwtManager == nil || h.basicAuth == nil {
		respondError(w, http.StatusInternalServerError, "AUTH_NOT_CONFIGURED", "Authentication manager not initialized", nil)
		return false
	}

	return true
}

// checkLockout rejects the attempt when the account or source address is
// locked out after repeated failures. The Retry-After header carries the
// remaining lockout duration.
func (h *Handler) checkLockout(w http.ResponseWriter, r *http.Request, username string) bool {
	locked, remaining := h.lockout.CheckLocked(username, clientAddr(r))
	if locked {
		w.Header().Set("Retry-After", strconv.Itoa(int(remaining.Seconds())+1))
		respondError(w, http.StatusTooManyRequests, "ACCOUNT_LOCKED", "Too many failed login attempts", nil)
		return false
	}
	return true
}

// authenticateCredentials verifies username and password
func (h *Handler) authenticateCredentials(w http.ResponseWriter, r *http.Request, req *models.LoginRequest) bool {
	if !h.basicAuth.VerifyPassword(req.Username, req.Password) {
		h.lockout.RecordFailedAttempt(req.Username, clientAddr(r))
		metrics.RecordAuthAttempt(false)
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password", nil)
		return false
	}

	h.lockout.RecordSuccessfulLogin(req.Username, clientAddr(r))
	metrics.RecordAuthAttempt(true)
	return true
}

// rememberMeTimeout is the extended token lifetime for remember_me logins.
const rememberMeTimeout = 30 * 24 * time.Hour

// generateAndSendToken generates JWT token and sends response
func (h *Handler) generateAndSendToken(w http.ResponseWriter, r *http.Request, req *models.LoginRequest) {
	timeout := h.config.Security.SessionTimeout
	if req.RememberMe {
		timeout = rememberMeTimeout
	}

	token, err := h.jwtManager.GenerateTokenWithTimeout(req.Username, auth.RoleAdmin, timeout)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "TOKEN_GENERATION_FAILED", "Failed to generate authentication token", err)
		return
	}

	expiresAt := time.Now().Add(timeout)

	h.setAuthCookie(w, r, token, expiresAt)
	h.sendLoginResponse(w, token, expiresAt, req.Username)
}

// setAuthCookie sets the authentication cookie
func (h *Handler) setAuthCookie(w http.ResponseWriter, r *http.Request, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})
}

// sendLoginResponse sends successful login response
func (h *Handler) sendLoginResponse(w http.ResponseWriter, token string, expiresAt time.Time, username string) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.LoginResponse{
			Token:     token,
			ExpiresAt: expiresAt,
			Username:  username,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// clientAddr extracts the client host from the request. The RealIP
// middleware rewrites RemoteAddr from forwarding headers, so the port
// may already be stripped.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
