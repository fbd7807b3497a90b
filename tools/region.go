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
	"github.com/tae0y/real-estate-mcp/region"
)

// RegionCodeInput is the input for get_region_code.
type RegionCodeInput struct {
	Query string `json:"query" jsonschema:"Free-form region name text supplied by the user (e.g. 마포구, 서울 마포구)."`
}

// notFound is the error shape for a region query with no match. It is
// outside the shared fault taxonomy on purpose: an unmatched name is an
// answer, not a fault.
type notFound struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// YearMonthResult is the output of get_current_year_month.
type YearMonthResult struct {
	YearMonth string `json:"year_month"`
}

func (t *Toolset) registerRegion(rt *realestate.Runtime) {
	realestate.AddTool(rt, &mcp.Tool{
		Name: "get_region_code",
		Description: "Convert a user-supplied region name to a 5-digit legal district code " +
			"for the MOLIT API. Must be called before any trade or rent tool. Accepts " +
			"free-form text such as \"마포구\", \"서울 마포구\". If multiple matches are " +
			"returned, show the matches array to the user and confirm which region they " +
			"mean before selecting a region_code.",
	}, t.handleRegionCode)

	realestate.AddTool(rt, &mcp.Tool{
		Name: "get_current_year_month",
		Description: "Return the current year and month in YYYYMM format for use with " +
			"trade/rent tools. Call this tool when the user asks about current or recent " +
			"transactions without specifying a year_month.",
	}, t.handleCurrentYearMonth)
}

func (t *Toolset) handleRegionCode(ctx context.Context, req *mcp.CallToolRequest, in RegionCodeInput) (*mcp.CallToolResult, any, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return respond(apierr.Validation("query is required"))
	}
	result, ok := region.Resolve(query)
	if !ok {
		return respond(notFound{
			Error:   "not_found",
			Message: "No matching region for: " + query,
		})
	}
	return respond(result)
}

func (t *Toolset) handleCurrentYearMonth(ctx context.Context, req *mcp.CallToolRequest, in struct{}) (*mcp.CallToolResult, any, error) {
	return respond(YearMonthResult{YearMonth: t.now().UTC().Format("200601")})
}
