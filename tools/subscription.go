// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tools

import (
	"context"
	"net/url"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	realestate "github.com/tae0y/real-estate-mcp"
	"github.com/tae0y/real-estate-mcp/apierr"
	"github.com/tae0y/real-estate-mcp/config"
	"github.com/tae0y/real-estate-mcp/onbid"
)

// SubscriptionInfoInput is the input for get_apt_subscription_info.
type SubscriptionInfoInput struct {
	Page       *int   `json:"page,omitempty" jsonschema:"Page number (1-based). Default 1."`
	PerPage    *int   `json:"per_page,omitempty" jsonschema:"Items per page. Default 100."`
	ReturnType string `json:"return_type,omitempty" jsonschema:"Response type, typically JSON."`
}

// SubscriptionResultsInput is the input for get_apt_subscription_results.
type SubscriptionResultsInput struct {
	StatKind      string `json:"stat_kind" jsonschema:"Which stats endpoint to call: reqst_area, reqst_age, przwner_area, przwner_age, cmpetrt_area, or aps_przwner."`
	StatYearMonth string `json:"stat_year_month,omitempty" jsonschema:"Year-month filter in YYYYMM (maps to STAT_DE)."`
	AreaCode      string `json:"area_code,omitempty" jsonschema:"Subscription area code (maps to SUBSCRPT_AREA_CODE)."`
	ResideSecd    string `json:"reside_secd,omitempty" jsonschema:"Residence section code (maps to RESIDE_SECD, used by some endpoints)."`
	Page          *int   `json:"page,omitempty" jsonschema:"Page number (1-based). Default 1."`
	PerPage       *int   `json:"per_page,omitempty" jsonschema:"Items per page. Default 100."`
	ReturnType    string `json:"return_type,omitempty" jsonschema:"Response type, typically JSON."`
}

// SubscriptionResult is the success payload of the odcloud-backed tools.
type SubscriptionResult struct {
	StatKind     string `json:"stat_kind,omitempty"`
	TotalCount   int    `json:"total_count"`
	Items        []any  `json:"items"`
	Page         int    `json:"page"`
	PerPage      int    `json:"per_page"`
	CurrentCount int    `json:"current_count"`
	MatchCount   int    `json:"match_count"`
}

// applyhomeStatEndpoints maps stat_kind to the ApplyhomeStatSvc operation.
var applyhomeStatEndpoints = map[string]string{
	"reqst_area":   "getAPTReqstAreaStat",
	"reqst_age":    "getAPTReqstAgeStat",
	"przwner_area": "getAPTPrzwnerAreaStat",
	"przwner_age":  "getAPTPrzwnerAgeStat",
	"cmpetrt_area": "getAPTCmpetrtAreaStat",
	"aps_przwner":  "getAPTApsPrzwnerStat",
}

func (t *Toolset) registerSubscription(rt *realestate.Runtime) {
	realestate.AddTool(rt, &mcp.Tool{
		Name: "get_apt_subscription_info",
		Description: "Return Applyhome (청약홈) APT subscription notice metadata: notice " +
			"number, house name, location, schedule dates (announcement, application, " +
			"winner, contract), and operator/constructor information. Use for questions " +
			"about 청약, 분양, 모집공고, 청약 일정, 당첨자 발표. Not tied to region_code. " +
			"Requires ODCLOUD_API_KEY (Authorization header) or ODCLOUD_SERVICE_KEY.",
	}, t.handleSubscriptionInfo)

	realestate.AddTool(rt, &mcp.Tool{
		Name: "get_apt_subscription_results",
		Description: "Return Applyhome (청약홈) subscription statistics: requests, " +
			"winners, competition rates, and scores (청약 경쟁률, 신청자, 당첨자, 가점). " +
			"Provides aggregated statistics, not individual notice schedules; for " +
			"schedules use get_apt_subscription_info. stat_kind selects the endpoint.",
	}, t.handleSubscriptionResults)
}

func (t *Toolset) handleSubscriptionInfo(ctx context.Context, req *mcp.CallToolRequest, in SubscriptionInfoInput) (*mcp.CallToolResult, any, error) {
	page, ok := pagingValue(in.Page, 1)
	if !ok {
		return respond(apierr.Validation("page must be >= 1"))
	}
	perPage, ok := pagingValue(in.PerPage, 100)
	if !ok {
		return respond(apierr.Validation("per_page must be >= 1"))
	}
	returnType := in.ReturnType
	if returnType == "" {
		returnType = "JSON"
	}

	endpoint := odcloudBaseURL + aptSubscriptionInfoPath
	return respond(t.fetchOdcloud(ctx, endpoint, page, perPage, returnType, nil, ""))
}

func (t *Toolset) handleSubscriptionResults(ctx context.Context, req *mcp.CallToolRequest, in SubscriptionResultsInput) (*mcp.CallToolResult, any, error) {
	page, ok := pagingValue(in.Page, 1)
	if !ok {
		return respond(apierr.Validation("page must be >= 1"))
	}
	perPage, ok := pagingValue(in.PerPage, 100)
	if !ok {
		return respond(apierr.Validation("per_page must be >= 1"))
	}
	returnType := in.ReturnType
	if returnType == "" {
		returnType = "JSON"
	}

	endpoint, ok := applyhomeStatEndpoints[in.StatKind]
	if !ok {
		return respond(apierr.Validation(
			"Invalid stat_kind. Expected one of: reqst_area, reqst_age, przwner_area, przwner_age, cmpetrt_area, aps_przwner"))
	}

	// odcloud filters use the cond[COLUMN::OP] syntax.
	cond := url.Values{}
	if in.StatYearMonth != "" {
		cond.Set("cond[STAT_DE::EQ]", in.StatYearMonth)
	}
	if in.AreaCode != "" {
		cond.Set("cond[SUBSCRPT_AREA_CODE::EQ]", in.AreaCode)
	}
	if in.ResideSecd != "" {
		cond.Set("cond[RESIDE_SECD::EQ]", in.ResideSecd)
	}

	return respond(t.fetchOdcloud(ctx, applyhomeStatBaseURL+"/"+endpoint, page, perPage, returnType, cond, in.StatKind))
}

// fetchOdcloud performs an odcloud.kr GET with the resolved credential mode
// and normalizes the standard odcloud envelope.
func (t *Toolset) fetchOdcloud(ctx context.Context, endpoint string, page, perPage int, returnType string, extra url.Values, statKind string) any {
	mode, key, cfgErr := config.OdcloudKey()
	if cfgErr != nil {
		return cfgErr
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("perPage", strconv.Itoa(perPage))
	params.Set("returnType", returnType)
	for k, vs := range extra {
		for _, v := range vs {
			params.Add(k, v)
		}
	}

	var headers map[string]string
	switch mode {
	case config.OdcloudAuthHeader:
		headers = map[string]string{"Authorization": key}
	case config.OdcloudServiceKey:
		params.Set("serviceKey", key)
	}

	payload, fetchErr := t.client.FetchJSON(ctx, endpoint+"?"+params.Encode(), headers)
	if fetchErr != nil {
		return fetchErr
	}
	body, ok := payload.(map[string]any)
	if !ok {
		return apierr.Parse("Unexpected response type")
	}

	items, _ := body["data"].([]any)
	if items == nil {
		items = []any{}
	}
	return SubscriptionResult{
		StatKind:     statKind,
		TotalCount:   onbid.IntField(body, "totalCount", 0),
		Items:        items,
		Page:         onbid.IntField(body, "page", page),
		PerPage:      onbid.IntField(body, "perPage", perPage),
		CurrentCount: onbid.IntField(body, "currentCount", 0),
		MatchCount:   onbid.IntField(body, "matchCount", 0),
	}
}
