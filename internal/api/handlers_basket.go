// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package api

import (
	"net/http"
	"strings"

	"github.com/mercatus-io/mercatus/internal/models"
	"github.com/mercatus-io/mercatus/internal/rules"
	"github.com/mercatus-io/mercatus/internal/store"
	"github.com/mercatus-io/mercatus/internal/views"
)

// This file contains the market basket endpoints for the Mercatus
// dashboard. These handlers work against the SKU summary and the
// precomputed association rule extract; both are optional datasets and
// each endpoint degrades in-band when its extract is missing.
//
// Basket Endpoints (5 total):
//   - BasketTopSKUs: SKU ranking by allocated revenue
//   - BasketRules: Association rules filtered by thresholds
//   - BasketRelatedRules: Rules touching one SKU or brand
//   - BasketSKUs: Entities appearing in the thresholded rule set
//   - BasketDefaults: Threshold defaults derived from the rule extract
//
// Threshold parameters (min_support, min_confidence, min_lift) default
// to values derived from the loaded rule table, so an unparameterized
// request shows a sensible rule count instead of everything or nothing.

// RuleListResponse is the payload of the rule listing endpoint.
type RuleListResponse struct {
	Available  bool             `json:"available"`
	Reason     string           `json:"reason,omitempty"`
	Thresholds rules.Thresholds `json:"thresholds"`
	Count      int              `json:"count"`
	Rules      []rules.Rule     `json:"rules"`
}

// RelatedRulesResponse is the payload of the per-entity rule drill-down.
type RelatedRulesResponse struct {
	Available  bool             `json:"available"`
	Reason     string           `json:"reason,omitempty"`
	Entity     string           `json:"entity"`
	Thresholds rules.Thresholds `json:"thresholds"`
	Count      int              `json:"count"`
	Rules      []rules.Rule     `json:"rules"`
}

// EntityListResponse is the payload of the rule entity listing.
type EntityListResponse struct {
	Available bool     `json:"available"`
	Reason    string   `json:"reason,omitempty"`
	Entities  []string `json:"entities"`
}

// RuleDefaultsResponse is the payload of the threshold defaults endpoint.
type RuleDefaultsResponse struct {
	Available bool           `json:"available"`
	Reason    string         `json:"reason,omitempty"`
	Defaults  rules.Defaults `json:"defaults"`
}

// buildThresholds parses the rule threshold parameters, defaulting each
// knob to the value derived from the loaded rule extract. Returns a
// validation error for out-of-range values.
func buildThresholds(r *http.Request, snap *store.Snapshot) (rules.Thresholds, *models.APIError) {
	d := snap.RuleDefaults()

	th := rules.Thresholds{
		MinSupport:    getFloatParam(r, "min_support", d.MinSupport),
		MinConfidence: getFloatParam(r, "min_confidence", d.MinConfidence),
		MinLift:       getFloatParam(r, "min_lift", d.MinLift),
	}

	validationReq := ThresholdRequestValidation{
		MinSupport:    th.MinSupport,
		MinConfidence: th.MinConfidence,
		MinLift:       th.MinLift,
	}
	if apiErr := validateRequest(&validationReq); apiErr != nil {
		return rules.Thresholds{}, apiErr
	}

	return th, nil
}

// BasketTopSKUs returns the SKU ranking by allocated revenue.
//
// Method: GET
// Path: /api/v1/basket/top-skus
//
// Query Parameters: limit (10-50, default 20). Out-of-range values are
// clamped into the slider range rather than rejected, matching the
// dashboard control.
//
// Response: TableData ranking SKUs by allocated revenue, descending.
func (h *Handler) BasketTopSKUs(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	limit := views.ClampSKULimit(getIntParam(r, "limit", 0))
	executor := NewViewQueryExecutor(h)
	executor.ExecuteSnapshot(w, r, "BasketTopSKUs", limit, func(snap *store.Snapshot) interface{} {
		t, ok := snap.Table(store.DatasetSKUSummary)
		if !ok {
			return models.UnavailableTable(views.DatasetReason(snap, store.DatasetSKUSummary))
		}
		return views.TopSKUs(t, limit)
	})
}

// BasketRules returns association rules filtered by thresholds
//
// @Summary Get association rules
// @Description Returns the precomputed SKU pair rules passing the support, confidence and lift thresholds. Thresholds default to values derived from the loaded rule table. Returns available=false with a reason when the rule extract is not loaded.
// @Tags Basket
// @Accept json
// @Produce json
// @Param min_support query number false "Minimum rule support (0-1)"
// @Param min_confidence query number false "Minimum rule confidence (0-1)"
// @Param min_lift query number false "Minimum rule lift"
// @Success 200 {object} models.APIResponse{data=RuleListResponse} "Rules retrieved successfully"
// @Failure 400 {object} models.APIResponse "Invalid threshold parameters"
// @Failure 503 {object} models.APIResponse "No dataset snapshot available"
// @Router /api/v1/basket/rules [get]
func (h *Handler) BasketRules(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	snap, ok := h.requireSnapshot(w)
	if !ok {
		return
	}

	th, apiErr := buildThresholds(r, snap)
	if apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.ExecuteSnapshot(w, r, "BasketRules", th, func(snap *store.Snapshot) interface{} {
		set, ok := snap.Rules()
		if !ok {
			return RuleListResponse{
				Reason:     views.DatasetReason(snap, store.DatasetRules),
				Thresholds: th,
				Rules:      []rules.Rule{},
			}
		}

		matched := set.Threshold(th).Rules()
		if matched == nil {
			matched = []rules.Rule{}
		}
		return RuleListResponse{
			Available:  true,
			Thresholds: th,
			Count:      len(matched),
			Rules:      matched,
		}
	})
}

// BasketRelatedRules returns the rules touching one SKU or brand.
//
// Method: GET
// Path: /api/v1/basket/rules/related
//
// Query Parameters: entity (required), plus the threshold parameters.
// A rule matches when the entity appears as antecedent or consequent.
//
// Response: RelatedRulesResponse with up to 50 matching rules ordered
// by lift descending.
func (h *Handler) BasketRelatedRules(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	snap, ok := h.requireSnapshot(w)
	if !ok {
		return
	}

	entity := strings.TrimSpace(r.URL.Query().Get("entity"))
	validationReq := RelatedRulesValidation{Entity: entity}
	if apiErr := validateRequest(&validationReq); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	th, apiErr := buildThresholds(r, snap)
	if apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	cacheParams := struct {
		Entity     string
		Thresholds rules.Thresholds
	}{entity, th}

	executor := NewViewQueryExecutor(h)
	executor.ExecuteSnapshot(w, r, "BasketRelatedRules", cacheParams, func(snap *store.Snapshot) interface{} {
		related, ok := views.RelatedRules(snap, th, entity)
		if !ok {
			return RelatedRulesResponse{
				Reason:     views.DatasetReason(snap, store.DatasetRules),
				Entity:     entity,
				Thresholds: th,
				Rules:      []rules.Rule{},
			}
		}
		return RelatedRulesResponse{
			Available:  true,
			Entity:     entity,
			Thresholds: th,
			Count:      len(related),
			Rules:      related,
		}
	})
}

// BasketSKUs returns the entities appearing in the thresholded rule set.
//
// Method: GET
// Path: /api/v1/basket/skus
//
// Query Parameters: Threshold parameters
//
// Response: EntityListResponse with the distinct antecedent and
// consequent names, sorted, for populating the drill-down selector.
func (h *Handler) BasketSKUs(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	snap, ok := h.requireSnapshot(w)
	if !ok {
		return
	}

	th, apiErr := buildThresholds(r, snap)
	if apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.ExecuteSnapshot(w, r, "BasketSKUs", th, func(snap *store.Snapshot) interface{} {
		set, ok := snap.Rules()
		if !ok {
			return EntityListResponse{
				Reason:   views.DatasetReason(snap, store.DatasetRules),
				Entities: []string{},
			}
		}

		entities := set.Threshold(th).Entities()
		if entities == nil {
			entities = []string{}
		}
		return EntityListResponse{
			Available: true,
			Entities:  entities,
		}
	})
}

// BasketDefaults returns the threshold defaults derived from the rule extract.
//
// Method: GET
// Path: /api/v1/basket/defaults
//
// Response: RuleDefaultsResponse with the initial slider positions and
// observed bounds. Available is false when the rule extract is not
// loaded; the defaults are then the static fallbacks.
func (h *Handler) BasketDefaults(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.ExecuteSnapshot(w, r, "BasketDefaults", nil, func(snap *store.Snapshot) interface{} {
		_, ok := snap.Rules()
		resp := RuleDefaultsResponse{
			Available: ok,
			Defaults:  snap.RuleDefaults(),
		}
		if !ok {
			resp.Reason = views.DatasetReason(snap, store.DatasetRules)
		}
		return resp
	})
}
