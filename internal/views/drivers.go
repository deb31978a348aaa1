// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
drivers.go - Revenue Drivers Report

Breaks the filtered monthly table down by sales channel and campaign
and tracks the refund rate over time.
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

// Drivers assembles the revenue drivers section from an
// already-filtered monthly table.
func Drivers(t *frame.Table) models.DriversView {
	start := time.Now()
	defer func() { metrics.ObserveViewCompute(ViewDrivers, time.Since(start)) }()

	return models.DriversView{
		ShopPerformance: ShopPerformance(t),
		CampaignRevenue: CampaignRevenue(t, CampaignLimit),
		RefundRateTrend: RefundRateTrend(t),
	}
}

// CampaignRevenue ranks campaign types by summed net revenue, keeping
// limit rows.
func CampaignRevenue(t *frame.Table, limit int) models.TableData {
	return rankedBy(t, store.ColCampaignType, limit)
}

// ShopPerformance ranks every sales channel by summed net revenue and
// reports order counts plus mean AOV and refund rate per channel.
func ShopPerformance(t *frame.Table) models.TableData {
	if name, ok := requireColumns(t, store.ColShop); !ok {
		return models.UnavailableTable(missingColumn(name))
	}
	agg := query.Aggregate(t, []string{store.ColShop}, []query.Measure{
		{Column: store.ColNetRevenue, Op: query.OpSum, As: outNetRevenue},
		{Column: store.ColOrders, Op: query.OpSum, As: outOrders},
		{Column: store.ColAOV, Op: query.OpMean, As: outAOV},
		{Column: store.ColRefundRate, Op: query.OpMean, As: outRefundRate},
	})
	return models.NewTableData(query.TopN(agg, outNetRevenue, 0))
}

// RefundRateTrend averages the refund rate per month, sorted by month
// ascending.
func RefundRateTrend(t *frame.Table) models.TableData {
	if name, ok := requireColumns(t, store.ColYearMonth, store.ColRefundRate); !ok {
		return models.UnavailableTable(missingColumn(name))
	}
	agg := query.Aggregate(t, []string{store.ColYearMonth}, []query.Measure{
		{Column: store.ColRefundRate, Op: query.OpMean, As: outRefundRate},
	})
	return models.NewTableData(agg)
}
