// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tools

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	realestate "github.com/tae0y/real-estate-mcp"
	"github.com/tae0y/real-estate-mcp/apierr"
	"github.com/tae0y/real-estate-mcp/config"
	"github.com/tae0y/real-estate-mcp/molit"
)

// MolitInput is the shared input for all MOLIT trade/rent tools.
type MolitInput struct {
	RegionCode string `json:"region_code" jsonschema:"5-digit legal district code (returned by get_region_code)."`
	YearMonth  string `json:"year_month" jsonschema:"Target year-month in YYYYMM format (e.g. 202501). Call get_current_year_month if not specified by the user."`
	NumOfRows  *int   `json:"num_of_rows,omitempty" jsonschema:"Maximum number of records to return. Default 100."`
}

// TradeResult is the success payload of the sale (trade) tools.
type TradeResult struct {
	TotalCount int                `json:"total_count"`
	Items      []molit.Record     `json:"items"`
	Summary    molit.TradeSummary `json:"summary"`
}

// RentResult is the success payload of the lease/rent tools.
type RentResult struct {
	TotalCount int               `json:"total_count"`
	Items      []molit.Record    `json:"items"`
	Summary    molit.RentSummary `json:"summary"`
}

func (t *Toolset) registerMolit(rt *realestate.Runtime) {
	type molitTool struct {
		name   string
		desc   string
		url    string
		schema molit.Schema
		rent   bool
	}

	defs := []molitTool{
		{
			name: "get_apartment_trades",
			desc: "Return apartment (아파트) sale records and summary statistics for a " +
				"region and month. Use summary.median_price_10k as the reference price. " +
				"To compute jeonse ratio, call get_apartment_rent for the same region " +
				"and month and divide its summary.median_deposit_10k by this " +
				"summary.median_price_10k. For price trends, call this tool for each of " +
				"the 6 months preceding the current month.",
			url:    aptTradeURL,
			schema: molit.AptTrade,
		},
		{
			name: "get_apartment_rent",
			desc: "Return apartment (아파트) lease and rent records with summary " +
				"statistics for a region and month. deposit_10k is the lease deposit, " +
				"monthly_rent_10k is 0 for pure jeonse contracts.",
			url:    aptRentURL,
			schema: molit.AptRent,
			rent:   true,
		},
		{
			name: "get_officetel_trades",
			desc: "Return officetel (오피스텔) sale records and summary statistics for a " +
				"region and month. Use to compare officetel prices against apartments " +
				"in the same area.",
			url:    offiTradeURL,
			schema: molit.OfficetelTrade,
		},
		{
			name: "get_officetel_rent",
			desc: "Return officetel (오피스텔) lease and rent records with summary " +
				"statistics for a region and month.",
			url:    offiRentURL,
			schema: molit.OfficetelRent,
			rent:   true,
		},
		{
			name: "get_villa_trades",
			desc: "Return row-house and multi-family (빌라, 연립, 다세대) sale records " +
				"for a region and month. Items include house_type (연립 or 다세대). " +
				"\"빌라\" is not a legal housing type; it commonly refers to 다세대/연립.",
			url:    villaTradeURL,
			schema: molit.VillaTrade,
		},
		{
			name: "get_villa_rent",
			desc: "Return row-house and multi-family (빌라, 연립, 다세대) lease and rent " +
				"records for a region and month.",
			url:    villaRentURL,
			schema: molit.VillaRent,
			rent:   true,
		},
		{
			name: "get_single_house_trades",
			desc: "Return detached and multi-unit house (단독/다가구) sale records for a " +
				"region and month. No unit name is provided by the API; area_sqm is " +
				"gross floor area.",
			url:    singleTradeURL,
			schema: molit.SingleHouseTrade,
		},
		{
			name: "get_single_house_rent",
			desc: "Return detached and multi-unit house (단독/다가구) lease and rent " +
				"records for a region and month.",
			url:    singleRentURL,
			schema: molit.SingleHouseRent,
			rent:   true,
		},
		{
			name: "get_commercial_trade",
			desc: "Return commercial and business building (상업업무용) sale records for " +
				"a region and month. Response structure differs from residential tools: " +
				"building_type, building_use, land_use, building_ar instead of " +
				"unit_name/area_sqm. share_dealing marks partial-share deals.",
			url:    commercialTradeURL,
			schema: molit.CommercialTrade,
		},
	}

	for _, def := range defs {
		def := def
		realestate.AddTool(rt, &mcp.Tool{Name: def.name, Description: def.desc},
			func(ctx context.Context, req *mcp.CallToolRequest, in MolitInput) (*mcp.CallToolResult, any, error) {
				return respond(t.runMolit(ctx, def.url, def.schema, def.rent, in))
			})
	}
}

// runMolit is the shared execution flow of all MOLIT XML tools:
// validate, resolve credentials, build URL, fetch, extract, summarize.
func (t *Toolset) runMolit(ctx context.Context, baseURL string, schema molit.Schema, rent bool, in MolitInput) any {
	if strings.TrimSpace(in.RegionCode) == "" {
		return apierr.Validation("region_code is required")
	}
	if strings.TrimSpace(in.YearMonth) == "" {
		return apierr.Validation("year_month is required")
	}
	rows, ok := pagingValue(in.NumOfRows, 100)
	if !ok {
		return apierr.Validation("num_of_rows must be >= 1")
	}

	key, cfgErr := config.DataGoKRKey()
	if cfgErr != nil {
		return cfgErr
	}

	u := buildMolitURL(baseURL, key, in.RegionCode, in.YearMonth, rows)
	xmlText, fetchErr := t.client.Fetch(ctx, u, nil)
	if fetchErr != nil {
		return fetchErr
	}

	records, code, err := molit.Extract(xmlText, schema)
	if err != nil {
		return apierr.Parse(err.Error())
	}
	if code != "" || records == nil {
		return apierr.API(code, molit.ErrorMessage(code))
	}

	if rent {
		return RentResult{
			TotalCount: molit.TotalCount(xmlText),
			Items:      records,
			Summary:    molit.BuildRentSummary(records),
		}
	}
	return TradeResult{
		TotalCount: molit.TotalCount(xmlText),
		Items:      records,
		Summary:    molit.BuildTradeSummary(records),
	}
}
