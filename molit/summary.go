// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package molit

import "slices"

// TradeSummary aggregates sale prices over an extracted record set.
type TradeSummary struct {
	MedianPrice10K int `json:"median_price_10k"`
	MinPrice10K    int `json:"min_price_10k"`
	MaxPrice10K    int `json:"max_price_10k"`
	SampleCount    int `json:"sample_count"`
}

// RentSummary aggregates deposits and monthly rents over an extracted record
// set. JeonseRatioPct is always null on the wire: combining trade and rent
// medians for the same region and month is the caller's decision, made from
// two separate tool calls.
type RentSummary struct {
	MedianDeposit10K  int      `json:"median_deposit_10k"`
	MinDeposit10K     int      `json:"min_deposit_10k"`
	MaxDeposit10K     int      `json:"max_deposit_10k"`
	MonthlyRentAvg10K int      `json:"monthly_rent_avg_10k"`
	JeonseRatioPct    *float64 `json:"jeonse_ratio_pct"`
	SampleCount       int      `json:"sample_count"`
}

// BuildTradeSummary computes median/min/max over price_10k. Empty input
// yields zeroed stats with SampleCount 0, never an error.
func BuildTradeSummary(records []Record) TradeSummary {
	prices := intField(records, "price_10k")
	if len(prices) == 0 {
		return TradeSummary{}
	}
	return TradeSummary{
		MedianPrice10K: medianInt(prices),
		MinPrice10K:    slices.Min(prices),
		MaxPrice10K:    slices.Max(prices),
		SampleCount:    len(prices),
	}
}

// BuildRentSummary computes median/min/max over deposit_10k and the mean of
// monthly_rent_10k. Empty input yields zeroed stats with SampleCount 0.
func BuildRentSummary(records []Record) RentSummary {
	deposits := intField(records, "deposit_10k")
	if len(deposits) == 0 {
		return RentSummary{}
	}
	rents := intField(records, "monthly_rent_10k")
	return RentSummary{
		MedianDeposit10K:  medianInt(deposits),
		MinDeposit10K:     slices.Min(deposits),
		MaxDeposit10K:     slices.Max(deposits),
		MonthlyRentAvg10K: meanInt(rents),
		SampleCount:       len(deposits),
	}
}

func intField(records []Record, name string) []int {
	out := make([]int, 0, len(records))
	for _, rec := range records {
		if v, ok := rec[name].(int); ok {
			out = append(out, v)
		}
	}
	return out
}

// medianInt returns the median, averaging the two middle values for
// even-length input.
func medianInt(vals []int) int {
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func meanInt(vals []int) int {
	if len(vals) == 0 {
		return 0
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return sum / len(vals)
}
