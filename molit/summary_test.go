// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package molit

import (
	"encoding/json"
	"strings"
	"testing"
)

func priceRecords(prices ...int) []Record {
	out := make([]Record, 0, len(prices))
	for _, p := range prices {
		out = append(out, Record{"price_10k": p})
	}
	return out
}

func TestBuildTradeSummary(t *testing.T) {
	t.Run("odd_sample", func(t *testing.T) {
		s := BuildTradeSummary(priceRecords(30000, 10000, 20000))
		if s.MedianPrice10K != 20000 {
			t.Errorf("median = %d, want 20000", s.MedianPrice10K)
		}
		if s.MinPrice10K != 10000 || s.MaxPrice10K != 30000 {
			t.Errorf("min/max = %d/%d, want 10000/30000", s.MinPrice10K, s.MaxPrice10K)
		}
		if s.SampleCount != 3 {
			t.Errorf("sample_count = %d, want 3", s.SampleCount)
		}
	})

	t.Run("even_sample_averages_middles", func(t *testing.T) {
		s := BuildTradeSummary(priceRecords(10000, 20000, 30000, 40000))
		if s.MedianPrice10K != 25000 {
			t.Errorf("median = %d, want 25000", s.MedianPrice10K)
		}
	})

	t.Run("empty_input_zeroed", func(t *testing.T) {
		s := BuildTradeSummary(nil)
		if s.SampleCount != 0 || s.MedianPrice10K != 0 {
			t.Errorf("empty summary = %+v, want zeroed", s)
		}
	})
}

func TestBuildRentSummary(t *testing.T) {
	records := []Record{
		{"deposit_10k": 30000, "monthly_rent_10k": 0},
		{"deposit_10k": 50000, "monthly_rent_10k": 100},
	}

	t.Run("aggregates", func(t *testing.T) {
		s := BuildRentSummary(records)
		if s.MedianDeposit10K != 40000 {
			t.Errorf("median deposit = %d, want 40000", s.MedianDeposit10K)
		}
		if s.MonthlyRentAvg10K != 50 {
			t.Errorf("monthly rent avg = %d, want 50", s.MonthlyRentAvg10K)
		}
		if s.SampleCount != 2 {
			t.Errorf("sample_count = %d, want 2", s.SampleCount)
		}
	})

	t.Run("jeonse_ratio_serializes_null", func(t *testing.T) {
		data, err := json.Marshal(BuildRentSummary(records))
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if !strings.Contains(string(data), `"jeonse_ratio_pct":null`) {
			t.Errorf("jeonse_ratio_pct not null in %s", data)
		}
	})
}
