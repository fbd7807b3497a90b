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

// onbidListSuccessCode is the success sentinel of Onbid's XML services.
const onbidListSuccessCode = "00"

// ThingInfoInput is the input for get_onbid_thing_info_list.
type ThingInfoInput struct {
	PageNo         *int   `json:"page_no,omitempty" jsonschema:"Page number (1-based). Default 1."`
	NumOfRows      *int   `json:"num_of_rows,omitempty" jsonschema:"Items per page. Default 20."`
	DpslMtdCd      string `json:"dpsl_mtd_cd,omitempty" jsonschema:"처분방식코드 (0001 매각, 0002 임대/대부)."`
	CtgrHirkID     string `json:"ctgr_hirk_id,omitempty" jsonschema:"카테고리상위ID. Resolve via get_onbid_bottom_code_info."`
	CtgrHirkIDMid  string `json:"ctgr_hirk_id_mid,omitempty" jsonschema:"카테고리상위ID(중간). Resolve via get_onbid_middle_code_info."`
	Sido           string `json:"sido,omitempty" jsonschema:"소재지 시/도. Resolve via get_onbid_addr1_info."`
	Sgk            string `json:"sgk,omitempty" jsonschema:"소재지 시/군/구. Resolve via get_onbid_addr2_info."`
	Emd            string `json:"emd,omitempty" jsonschema:"소재지 읍/면/동. Resolve via get_onbid_addr3_info."`
	GoodsPriceFrom *int   `json:"goods_price_from,omitempty" jsonschema:"감정가 range start (won)."`
	GoodsPriceTo   *int   `json:"goods_price_to,omitempty" jsonschema:"감정가 range end (won)."`
	OpenPriceFrom  *int   `json:"open_price_from,omitempty" jsonschema:"최저입찰가 range start (won)."`
	OpenPriceTo    *int   `json:"open_price_to,omitempty" jsonschema:"최저입찰가 range end (won)."`
	PbctBegnDtm    string `json:"pbct_begn_dtm,omitempty" jsonschema:"입찰일자 from (YYYYMMDD)."`
	PbctClsDtm     string `json:"pbct_cls_dtm,omitempty" jsonschema:"입찰일자 to (YYYYMMDD)."`
	CltrNm         string `json:"cltr_nm,omitempty" jsonschema:"물건명 search keyword."`
}

// CodePageInput is the shared paging input of the parameterless code tools.
type CodePageInput struct {
	PageNo    *int `json:"page_no,omitempty" jsonschema:"Page number (1-based). Default 1."`
	NumOfRows *int `json:"num_of_rows,omitempty" jsonschema:"Items per page. Default 100."`
}

// CodeParentInput adds the required parent category for drill-down lookups.
type CodeParentInput struct {
	CtgrID    string `json:"ctgr_id" jsonschema:"Parent CTGR_ID from the previous code level (e.g. 10000)."`
	PageNo    *int   `json:"page_no,omitempty" jsonschema:"Page number (1-based). Default 1."`
	NumOfRows *int   `json:"num_of_rows,omitempty" jsonschema:"Items per page. Default 100."`
}

// Addr2Input requires the depth-1 address.
type Addr2Input struct {
	Addr1     string `json:"addr1" jsonschema:"시/도 from get_onbid_addr1_info (e.g. 서울특별시)."`
	PageNo    *int   `json:"page_no,omitempty" jsonschema:"Page number (1-based). Default 1."`
	NumOfRows *int   `json:"num_of_rows,omitempty" jsonschema:"Items per page. Default 100."`
}

// Addr3Input requires the depth-2 address.
type Addr3Input struct {
	Addr2     string `json:"addr2" jsonschema:"시/군/구 from get_onbid_addr2_info (e.g. 마포구)."`
	PageNo    *int   `json:"page_no,omitempty" jsonschema:"Page number (1-based). Default 1."`
	NumOfRows *int   `json:"num_of_rows,omitempty" jsonschema:"Items per page. Default 100."`
}

// DtlAddrInput requires the depth-3 address.
type DtlAddrInput struct {
	Addr3     string `json:"addr3" jsonschema:"읍/면/동 from get_onbid_addr3_info."`
	PageNo    *int   `json:"page_no,omitempty" jsonschema:"Page number (1-based). Default 1."`
	NumOfRows *int   `json:"num_of_rows,omitempty" jsonschema:"Items per page. Default 100."`
}

func (t *Toolset) registerOnbid(rt *realestate.Runtime) {
	realestate.AddTool(rt, &mcp.Tool{
		Name: "get_onbid_thing_info_list",
		Description: "Return Onbid ThingInfoInquireSvc (물건정보조회서비스) list items from " +
			"getUnifyUsageCltr. Use for 온비드 물건, 통합용도별물건, 처분방식, 감정가, " +
			"최저입찰가 queries. Resolve coded filters first: category via " +
			"get_onbid_top/middle/bottom_code_info (use middle CTGR_ID as " +
			"ctgr_hirk_id_mid, bottom CTGR_ID as ctgr_hirk_id), location via " +
			"get_onbid_addr1/2/3_info (use the ADDR* strings as sido/sgk/emd). If " +
			"uncertain, omit category filters, fetch a small list, then refine. Items " +
			"are raw tag-to-text records.",
	}, t.handleThingInfoList)

	realestate.AddTool(rt, &mcp.Tool{
		Name: "get_onbid_top_code_info",
		Description: "Return Onbid top-level usage/category codes (용도 코드, 카테고리 " +
			"코드). Discover top-level CTGR_ID values here, then drill down with " +
			"get_onbid_middle_code_info and get_onbid_bottom_code_info to fill " +
			"ThingInfoInquireSvc parameters. Records contain CTGR_ID, CTGR_NM, " +
			"CTGR_HIRK_ID, CTGR_HIRK_NM.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in CodePageInput) (*mcp.CallToolResult, any, error) {
		return respond(t.runCodeInfo(ctx, onbidCodeTopURL, nil, in.PageNo, in.NumOfRows))
	})

	realestate.AddTool(rt, &mcp.Tool{
		Name: "get_onbid_middle_code_info",
		Description: "Return Onbid middle-level usage/category codes under a parent " +
			"CTGR_ID from get_onbid_top_code_info (e.g. 부동산=10000 → 토지=10100).",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in CodeParentInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.CtgrID) == "" {
			return respond(apierr.Validation("ctgr_id is required"))
		}
		return respond(t.runCodeInfo(ctx, onbidCodeMiddleURL, url.Values{"CTGR_ID": {in.CtgrID}}, in.PageNo, in.NumOfRows))
	})

	realestate.AddTool(rt, &mcp.Tool{
		Name: "get_onbid_bottom_code_info",
		Description: "Return Onbid bottom-level usage/category codes under a parent " +
			"CTGR_ID from get_onbid_middle_code_info (e.g. 전, 답, 대지 subtypes).",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in CodeParentInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.CtgrID) == "" {
			return respond(apierr.Validation("ctgr_id is required"))
		}
		return respond(t.runCodeInfo(ctx, onbidCodeBottomURL, url.Values{"CTGR_ID": {in.CtgrID}}, in.PageNo, in.NumOfRows))
	})

	realestate.AddTool(rt, &mcp.Tool{
		Name: "get_onbid_addr1_info",
		Description: "Return the Onbid address depth-1 list (시/도). Pick an ADDR1 value " +
			"here, then call get_onbid_addr2_info and get_onbid_addr3_info to resolve " +
			"sido/sgk/emd for get_onbid_thing_info_list.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in CodePageInput) (*mcp.CallToolResult, any, error) {
		return respond(t.runCodeInfo(ctx, onbidAddr1URL, nil, in.PageNo, in.NumOfRows))
	})

	realestate.AddTool(rt, &mcp.Tool{
		Name:        "get_onbid_addr2_info",
		Description: "Return the Onbid address depth-2 list (시/군/구) under addr1.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in Addr2Input) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.Addr1) == "" {
			return respond(apierr.Validation("addr1 is required"))
		}
		return respond(t.runCodeInfo(ctx, onbidAddr2URL, url.Values{"ADDR1": {in.Addr1}}, in.PageNo, in.NumOfRows))
	})

	realestate.AddTool(rt, &mcp.Tool{
		Name:        "get_onbid_addr3_info",
		Description: "Return the Onbid address depth-3 list (읍/면/동) under addr2.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in Addr3Input) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.Addr2) == "" {
			return respond(apierr.Validation("addr2 is required"))
		}
		return respond(t.runCodeInfo(ctx, onbidAddr3URL, url.Values{"ADDR2": {in.Addr2}}, in.PageNo, in.NumOfRows))
	})

	realestate.AddTool(rt, &mcp.Tool{
		Name:        "get_onbid_dtl_addr_info",
		Description: "Return Onbid detailed addresses under addr3.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in DtlAddrInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.Addr3) == "" {
			return respond(apierr.Validation("addr3 is required"))
		}
		return respond(t.runCodeInfo(ctx, onbidDtlAddrURL, url.Values{"ADDR3": {in.Addr3}}, in.PageNo, in.NumOfRows))
	})
}

func (t *Toolset) handleThingInfoList(ctx context.Context, req *mcp.CallToolRequest, in ThingInfoInput) (*mcp.CallToolResult, any, error) {
	pageNo, ok := pagingValue(in.PageNo, 1)
	if !ok {
		return respond(apierr.Validation("page_no must be >= 1"))
	}
	numOfRows, ok := pagingValue(in.NumOfRows, 20)
	if !ok {
		return respond(apierr.Validation("num_of_rows must be >= 1"))
	}

	key, cfgErr := config.OnbidKey()
	if cfgErr != nil {
		return respond(cfgErr)
	}

	// ThingInfoInquireSvc takes its filters in UPPER_SNAKE parameter names.
	params := url.Values{}
	params.Set("pageNo", strconv.Itoa(pageNo))
	params.Set("numOfRows", strconv.Itoa(numOfRows))
	setIfPresent(params, "DPSL_MTD_CD", in.DpslMtdCd)
	setIfPresent(params, "CTGR_HIRK_ID", in.CtgrHirkID)
	setIfPresent(params, "CTGR_HIRK_ID_MID", in.CtgrHirkIDMid)
	setIfPresent(params, "SIDO", in.Sido)
	setIfPresent(params, "SGK", in.Sgk)
	setIfPresent(params, "EMD", in.Emd)
	setIntIfPresent(params, "GOODS_PRICE_FROM", in.GoodsPriceFrom)
	setIntIfPresent(params, "GOODS_PRICE_TO", in.GoodsPriceTo)
	setIntIfPresent(params, "OPEN_PRICE_FROM", in.OpenPriceFrom)
	setIntIfPresent(params, "OPEN_PRICE_TO", in.OpenPriceTo)
	setIfPresent(params, "PBCT_BEGN_DTM", in.PbctBegnDtm)
	setIfPresent(params, "PBCT_CLS_DTM", in.PbctClsDtm)
	setIfPresent(params, "CLTR_NM", in.CltrNm)

	return respond(t.runOnbidXML(ctx, onbidThingInfoListURL, key, params, pageNo, numOfRows))
}

// runCodeInfo executes an OnbidCodeInfoInquireSvc lookup with standard
// paging defaults.
func (t *Toolset) runCodeInfo(ctx context.Context, endpoint string, extra url.Values, page, rows *int) any {
	pageNo, ok := pagingValue(page, 1)
	if !ok {
		return apierr.Validation("page_no must be >= 1")
	}
	numOfRows, ok := pagingValue(rows, 100)
	if !ok {
		return apierr.Validation("num_of_rows must be >= 1")
	}

	key, cfgErr := config.OnbidKey()
	if cfgErr != nil {
		return cfgErr
	}

	params := url.Values{}
	params.Set("pageNo", strconv.Itoa(pageNo))
	params.Set("numOfRows", strconv.Itoa(numOfRows))
	for k, vs := range extra {
		for _, v := range vs {
			params.Add(k, v)
		}
	}

	return t.runOnbidXML(ctx, endpoint, key, params, pageNo, numOfRows)
}

// runOnbidXML fetches an Onbid XML endpoint and maps the list response to
// the common envelope.
func (t *Toolset) runOnbidXML(ctx context.Context, endpoint, key string, params url.Values, pageNo, numOfRows int) any {
	xmlText, fetchErr := t.client.Fetch(ctx, buildServiceKeyURL(endpoint, key, params), nil)
	if fetchErr != nil {
		return fetchErr
	}

	result, err := onbid.ParseListXML(xmlText, onbidListSuccessCode)
	if err != nil {
		return apierr.Parse(err.Error())
	}
	if result.ErrorCode != "" {
		msg := result.ErrorMessage
		if msg == "" {
			msg = "Onbid API error"
		}
		return apierr.API(result.ErrorCode, msg)
	}

	return AuctionResult{
		TotalCount: result.TotalCount,
		Items:      result.Items,
		PageNo:     pageNo,
		NumOfRows:  numOfRows,
	}
}
