// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
overview.go - Landing Report

Builds the overview section from the filtered monthly table: headline
KPIs, the monthly revenue trend and the top brand and shipping country
rankings.
*/

package views

import (
	"time"

	"github.com/mercatus-io/mercatus/internal/frame"
	"github.com/mercatus-io/mercatus/internal/metrics"
	"github.com/mercatus-io/mercatus/internal/models"
	"github.com/mercatus-io/mercatus/internal/query"
	"github.com/mercatus-io/mercatus/internal/store"
)

// Overview assembles the landing report from an already-filtered
// monthly table.
func Overview(t *frame.Table) models.OverviewView {
	start := time.Now()
	defer func() { metrics.ObserveViewCompute(ViewOverview, time.Since(start)) }()

	return models.OverviewView{
		KPIs:         HeadlineKPIs(t),
		RevenueTrend: RevenueTrend(t),
		TopBrands:    TopBrands(t, BrandLimit),
		TopCountries: TopCountries(t, CountryLimit),
	}
}

// TopBrands ranks brands by summed net revenue, keeping limit rows.
func TopBrands(t *frame.Table, limit int) models.TableData {
	return rankedBy(t, store.ColBrands, limit)
}

// TopCountries ranks shipping countries by summed net revenue, keeping
// limit rows.
func TopCountries(t *frame.Table, limit int) models.TableData {
	return rankedBy(t, store.ColShippingCountry, limit)
}

// HeadlineKPIs computes the six headline scalars. Ratios degrade to
// the undefined state when their denominator is zero, and every scalar
// degrades to no_value when its source column is absent or empty.
func HeadlineKPIs(t *frame.Table) models.OverviewKPIs {
	netRevenue := query.Total(t, store.ColNetRevenue)
	orders := query.Total(t, store.ColOrders)
	refunds := query.Total(t, store.ColRefund)
	couponOrders := query.ConditionalTotal(t, store.ColOrders, store.ColHasCoupon, frame.Bool(true))
	return models.OverviewKPIs{
		NetRevenue:  netRevenue,
		Orders:      orders,
		AOV:         query.Div(netRevenue, orders),
		Refunds:     refunds,
		RefundRate:  query.Div(refunds, query.Total(t, store.ColOrderTotal)),
		CouponUsage: query.Div(couponOrders, orders),
	}
}

// RevenueTrend aggregates net revenue and order counts per month,
// sorted by month ascending.
func RevenueTrend(t *frame.Table) models.TableData {
	if name, ok := requireColumns(t, store.ColYearMonth); !ok {
		return models.UnavailableTable(missingColumn(name))
	}
	agg := query.Aggregate(t, []string{store.ColYearMonth}, []query.Measure{
		{Column: store.ColNetRevenue, Op: query.OpSum, As: outNetRevenue},
		{Column: store.ColOrders, Op: query.OpSum, As: outOrders},
	})
	return models.NewTableData(agg)
}

// rankedBy sums net revenue per value of dim and keeps the top limit
// rows. Shared by the brand and country rankings and by the campaign
// ranking on the drivers view.
func rankedBy(t *frame.Table, dim string, limit int) models.TableData {
	if name, ok := requireColumns(t, dim, store.ColNetRevenue); !ok {
		return models.UnavailableTable(missingColumn(name))
	}
	agg := query.Aggregate(t, []string{dim}, []query.Measure{
		{Column: store.ColNetRevenue, Op: query.OpSum, As: outNetRevenue},
		{Column: store.ColOrders, Op: query.OpSum, As: outOrders},
	})
	return models.NewTableData(query.TopN(agg, outNetRevenue, limit))
}
