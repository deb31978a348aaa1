// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
promotions.go - Promotion Effectiveness Report

Splits revenue by coupon usage and tracks the share of couponed orders
per month.
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

// Promotions assembles the promotion effectiveness section from an
// already-filtered monthly table.
func Promotions(t *frame.Table) models.PromotionsView {
	start := time.Now()
	defer func() { metrics.ObserveViewCompute(ViewPromotions, time.Since(start)) }()

	return models.PromotionsView{
		KPIs:             PromotionKPIs(t),
		CampaignRevenue:  rankedBy(t, store.ColCampaignType, CampaignLimit),
		CouponUsageTrend: CouponUsageTrend(t),
	}
}

// PromotionKPIs splits net revenue by coupon usage and averages the
// discount rate.
func PromotionKPIs(t *frame.Table) models.PromotionsKPIs {
	return models.PromotionsKPIs{
		NetRevenueWithCoupon:    query.ConditionalTotal(t, store.ColNetRevenue, store.ColHasCoupon, frame.Bool(true)),
		NetRevenueWithoutCoupon: query.ConditionalTotal(t, store.ColNetRevenue, store.ColHasCoupon, frame.Bool(false)),
		AvgDiscountRate:         query.MeanOf(t, store.ColAvgDiscountRate),
	}
}

// CouponUsageTrend reports, per month, the total orders, the couponed
// orders and the coupon usage rate. Months without a couponed row
// count zero coupon orders; the rate is missing when the month's order
// total is zero or unknown.
func CouponUsageTrend(t *frame.Table) models.TableData {
	if name, ok := requireColumns(t, store.ColYearMonth, store.ColOrders, store.ColHasCoupon); !ok {
		return models.UnavailableTable(missingColumn(name))
	}

	totals := query.Aggregate(t, []string{store.ColYearMonth}, []query.Measure{
		{Column: store.ColOrders, Op: query.OpSum, As: outOrders},
	})
	couponRows := query.Apply(t, query.Spec{Sets: []query.SetPredicate{
		{Column: store.ColHasCoupon, Selected: []string{"true"}},
	}})
	coupons := query.Aggregate(couponRows, []string{store.ColYearMonth}, []query.Measure{
		{Column: store.ColOrders, Op: query.OpSum, As: outCouponOrders},
	})

	couponByMonth := make(map[frame.Value]frame.Value, coupons.NumRows())
	if mcol, ok := coupons.Col(store.ColYearMonth); ok {
		ccol, _ := coupons.Col(outCouponOrders)
		for i := 0; i < coupons.NumRows(); i++ {
			couponByMonth[mcol.Value(i)] = ccol.Value(i)
		}
	}

	monthCol, _ := totals.Col(store.ColYearMonth)
	ordersCol, _ := totals.Col(outOrders)
	n := totals.NumRows()
	months := make([]frame.Value, n)
	orders := make([]frame.Value, n)
	couponOrders := make([]frame.Value, n)
	usage := make([]frame.Value, n)
	for i := 0; i < n; i++ {
		month := monthCol.Value(i)
		total := ordersCol.Value(i)
		coupon, ok := couponByMonth[month]
		if !ok {
			coupon = frame.Int(0)
		}
		months[i] = month
		orders[i] = total
		couponOrders[i] = coupon

		totalF, totalOK := total.Float64()
		couponF, couponOK := coupon.Float64()
		if !totalOK || !couponOK || totalF == 0 {
			usage[i] = frame.Missing()
			continue
		}
		usage[i] = frame.Float(couponF / totalF)
	}

	out, err := frame.NewTable(
		frame.NewColumn(store.ColYearMonth, months),
		frame.NewColumn(outOrders, orders),
		frame.NewColumn(outCouponOrders, couponOrders),
		frame.NewColumn(outCouponUsage, usage),
	)
	if err != nil {
		return models.UnavailableTable(err.Error())
	}
	return models.NewTableData(out)
}
