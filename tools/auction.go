// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tools

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	realestate "github.com/tae0y/real-estate-mcp"
	"github.com/tae0y/real-estate-mcp/apierr"
	"github.com/tae0y/real-estate-mcp/config"
	"github.com/tae0y/real-estate-mcp/onbid"
)

// AuctionItemsInput is the input for get_public_auction_items.
type AuctionItemsInput struct {
	PageNo           *int   `json:"page_no,omitempty" jsonschema:"Page number (1-based). Default 1."`
	NumOfRows        *int   `json:"num_of_rows,omitempty" jsonschema:"Items per page. Default 20."`
	CltrTypeCd       string `json:"cltr_type_cd" jsonschema:"Item type code (e.g. 0001 real estate). Required."`
	PrptDivCd        string `json:"prpt_div_cd" jsonschema:"Property division code. Required."`
	DspsMthodCd      string `json:"dsps_mthod_cd" jsonschema:"Disposal method code (0001 sale, 0002 lease). Required."`
	BidDivCd         string `json:"bid_div_cd" jsonschema:"Bid division code. Required."`
	LctnSdnm         string `json:"lctn_sdnm,omitempty" jsonschema:"Location 시/도 name."`
	LctnSggnm        string `json:"lctn_sggnm,omitempty" jsonschema:"Location 시/군/구 name."`
	LctnEmdNm        string `json:"lctn_emd_nm,omitempty" jsonschema:"Location 읍/면/동 name."`
	OpbdDtStart      string `json:"opbd_dt_start" jsonschema:"Open-bid date range start (YYYYMMDD). Required."`
	OpbdDtEnd        string `json:"opbd_dt_end" jsonschema:"Open-bid date range end (YYYYMMDD). Required."`
	ApslEvlAmtStart  *int   `json:"apsl_evl_amt_start,omitempty" jsonschema:"Appraisal amount range start (won)."`
	ApslEvlAmtEnd    *int   `json:"apsl_evl_amt_end,omitempty" jsonschema:"Appraisal amount range end (won)."`
	LowstBidPrcStart *int   `json:"lowst_bid_prc_start,omitempty" jsonschema:"Lowest bid price range start (won)."`
	LowstBidPrcEnd   *int   `json:"lowst_bid_prc_end,omitempty" jsonschema:"Lowest bid price range end (won)."`
	PbctStatCd       string `json:"pbct_stat_cd,omitempty" jsonschema:"Bid result status code."`
	OnbidCltrNm      string `json:"onbid_cltr_nm,omitempty" jsonschema:"Item name keyword."`
}

// AuctionDetailInput is the input for get_public_auction_item_detail.
type AuctionDetailInput struct {
	CltrMngNo  string `json:"cltr_mng_no" jsonschema:"물건관리번호 (cltrMngNo)."`
	PbctCdtnNo string `json:"pbct_cdtn_no" jsonschema:"공매조건번호 (pbctCdtnNo)."`
	PageNo     *int   `json:"page_no,omitempty" jsonschema:"Page number (1-based). Default 1."`
	NumOfRows  *int   `json:"num_of_rows,omitempty" jsonschema:"Items per page. Default 20."`
}

// AuctionResult is the success payload of the Onbid list tools.
type AuctionResult struct {
	TotalCount int              `json:"total_count"`
	Items      []map[string]any `json:"items"`
	PageNo     int              `json:"page_no"`
	NumOfRows  int              `json:"num_of_rows"`
}

func (t *Toolset) registerAuction(rt *realestate.Runtime) {
	realestate.AddTool(rt, &mcp.Tool{
		Name: "get_public_auction_items",
		Description: "Return Onbid (온비드, 공매) next-gen bid result list items from " +
			"OnbidCltrBidRsltListSrvc/getCltrBidRsltList. Use for questions about 공매, " +
			"입찰, 낙찰, 유찰, 캠코. Requires opbd_dt_start/end, cltr_type_cd, " +
			"prpt_div_cd, dsps_mthod_cd and bid_div_cd; location and price filters " +
			"are optional. Items are raw fields from the API.",
	}, t.handleAuctionItems)

	realestate.AddTool(rt, &mcp.Tool{
		Name: "get_public_auction_item_detail",
		Description: "Return Onbid next-gen bid result detail for a single item from " +
			"OnbidCltrBidRsltDtlSrvc/getCltrBidRsltDtl. Requires cltr_mng_no " +
			"(물건관리번호) and pbct_cdtn_no (공매조건번호) from get_public_auction_items.",
	}, t.handleAuctionDetail)
}

func (t *Toolset) handleAuctionItems(ctx context.Context, req *mcp.CallToolRequest, in AuctionItemsInput) (*mcp.CallToolResult, any, error) {
	pageNo, ok := pagingValue(in.PageNo, 1)
	if !ok {
		return respond(apierr.Validation("page_no must be >= 1"))
	}
	numOfRows, ok := pagingValue(in.NumOfRows, 20)
	if !ok {
		return respond(apierr.Validation("num_of_rows must be >= 1"))
	}
	required := []struct {
		name, value string
	}{
		{"opbd_dt_start", in.OpbdDtStart},
		{"opbd_dt_end", in.OpbdDtEnd},
		{"cltr_type_cd", in.CltrTypeCd},
		{"prpt_div_cd", in.PrptDivCd},
		{"dsps_mthod_cd", in.DspsMthodCd},
		{"bid_div_cd", in.BidDivCd},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return respond(apierr.Validation(f.name + " is required"))
		}
	}

	params := url.Values{}
	params.Set("pageNo", strconv.Itoa(pageNo))
	params.Set("numOfRows", strconv.Itoa(numOfRows))
	params.Set("resultType", "json")
	setIfPresent(params, "cltrTypeCd", in.CltrTypeCd)
	setIfPresent(params, "prptDivCd", in.PrptDivCd)
	setIfPresent(params, "dspsMthodCd", in.DspsMthodCd)
	setIfPresent(params, "bidDivCd", in.BidDivCd)
	setIfPresent(params, "lctnSdnm", in.LctnSdnm)
	setIfPresent(params, "lctnSggnm", in.LctnSggnm)
	setIfPresent(params, "lctnEmdNm", in.LctnEmdNm)
	setIfPresent(params, "opbdDtStart", in.OpbdDtStart)
	setIfPresent(params, "opbdDtEnd", in.OpbdDtEnd)
	setIntIfPresent(params, "apslEvlAmtStart", in.ApslEvlAmtStart)
	setIntIfPresent(params, "apslEvlAmtEnd", in.ApslEvlAmtEnd)
	setIntIfPresent(params, "lowstBidPrcStart", in.LowstBidPrcStart)
	setIntIfPresent(params, "lowstBidPrcEnd", in.LowstBidPrcEnd)
	setIfPresent(params, "pbctStatCd", in.PbctStatCd)
	setIfPresent(params, "onbidCltrNm", in.OnbidCltrNm)

	return respond(t.fetchAuctionJSON(ctx, onbidBidResultListURL, params, pageNo, numOfRows))
}

func (t *Toolset) handleAuctionDetail(ctx context.Context, req *mcp.CallToolRequest, in AuctionDetailInput) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(in.CltrMngNo) == "" {
		return respond(apierr.Validation("cltr_mng_no is required"))
	}
	if strings.TrimSpace(in.PbctCdtnNo) == "" {
		return respond(apierr.Validation("pbct_cdtn_no is required"))
	}
	pageNo, ok := pagingValue(in.PageNo, 1)
	if !ok {
		return respond(apierr.Validation("page_no must be >= 1"))
	}
	numOfRows, ok := pagingValue(in.NumOfRows, 20)
	if !ok {
		return respond(apierr.Validation("num_of_rows must be >= 1"))
	}

	params := url.Values{}
	params.Set("pageNo", strconv.Itoa(pageNo))
	params.Set("numOfRows", strconv.Itoa(numOfRows))
	params.Set("resultType", "json")
	params.Set("cltrMngNo", in.CltrMngNo)
	params.Set("pbctCdtnNo", in.PbctCdtnNo)

	return respond(t.fetchAuctionJSON(ctx, onbidBidResultDetailURL, params, pageNo, numOfRows))
}

// fetchAuctionJSON performs a B010003 JSON GET and normalizes the envelope.
// Success codes differ per upstream deployment ("00" vs "000"), so both are
// accepted; an empty resultCode also counts as success.
func (t *Toolset) fetchAuctionJSON(ctx context.Context, endpoint string, params url.Values, pageNo, numOfRows int) any {
	key, cfgErr := config.OnbidKey()
	if cfgErr != nil {
		return cfgErr
	}

	payload, fetchErr := t.client.FetchJSON(ctx, buildServiceKeyURL(endpoint, key, params), nil)
	if fetchErr != nil {
		return fetchErr
	}
	envelope, ok := payload.(map[string]any)
	if !ok {
		return apierr.Parse("Unexpected response type")
	}

	resultCode, body, items := onbid.Normalize(envelope)
	if resultCode != "" && resultCode != "00" && resultCode != "000" {
		return apierr.API(resultCode, onbid.Message(envelope, "Onbid API error"))
	}

	return AuctionResult{
		TotalCount: onbid.IntField(body, "totalCount", 0),
		Items:      items,
		PageNo:     onbid.IntField(body, "pageNo", pageNo),
		NumOfRows:  onbid.IntField(body, "numOfRows", numOfRows),
	}
}

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func setIntIfPresent(params url.Values, key string, value *int) {
	if value != nil {
		params.Set(key, strconv.Itoa(*value))
	}
}
