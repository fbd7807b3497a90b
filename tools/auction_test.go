// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/tae0y/real-estate-mcp/apierr"
	"github.com/tae0y/real-estate-mcp/config"
)

func TestFetchAuctionJSON(t *testing.T) {
	listParams := func() url.Values {
		params := url.Values{}
		params.Set("pageNo", "1")
		params.Set("numOfRows", "20")
		params.Set("resultType", "json")
		return params
	}

	t.Run("nested_envelope_success", func(t *testing.T) {
		clearAPIKeys(t)
		t.Setenv(config.EnvOnbidKey, "onbid-key")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("serviceKey") != "onbid-key" || q.Get("resultType") != "json" {
				t.Errorf("unexpected query: %s", r.URL.RawQuery)
			}
			w.Write([]byte(`{
				"response": {
					"header": {"resultCode": "00", "resultMsg": "OK"},
					"body": {
						"totalCount": 2, "pageNo": 1, "numOfRows": 20,
						"items": {"item": [{"CLTR_NM": "아파트 공매"}, {"CLTR_NM": "토지 공매"}]}
					}
				}
			}`))
		}))
		defer srv.Close()

		out := newTestToolset(t).fetchAuctionJSON(context.Background(), srv.URL, listParams(), 1, 20)
		res, ok := out.(AuctionResult)
		if !ok {
			t.Fatalf("result = %T (%v), want AuctionResult", out, out)
		}
		if res.TotalCount != 2 || len(res.Items) != 2 || res.PageNo != 1 || res.NumOfRows != 20 {
			t.Errorf("result = %+v", res)
		}
	})

	t.Run("triple_zero_success_code", func(t *testing.T) {
		clearAPIKeys(t)
		t.Setenv(config.EnvOnbidKey, "onbid-key")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"header": {"resultCode": "000"}, "body": {"items": [], "totalCount": 0}}`))
		}))
		defer srv.Close()

		if _, ok := newTestToolset(t).fetchAuctionJSON(context.Background(), srv.URL, listParams(), 1, 20).(AuctionResult); !ok {
			t.Fatal("expected AuctionResult for resultCode 000")
		}
	})

	t.Run("absent_code_is_success", func(t *testing.T) {
		clearAPIKeys(t)
		t.Setenv(config.EnvOnbidKey, "onbid-key")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"body": {"items": []}, "header": {"resultMsg": "ok"}}`))
		}))
		defer srv.Close()

		res, ok := newTestToolset(t).fetchAuctionJSON(context.Background(), srv.URL, listParams(), 3, 50).(AuctionResult)
		if !ok {
			t.Fatal("expected AuctionResult")
		}
		// Body carries no paging echoes, so the request values stand in.
		if res.PageNo != 3 || res.NumOfRows != 50 {
			t.Errorf("paging = %d/%d, want 3/50", res.PageNo, res.NumOfRows)
		}
	})

	t.Run("result_wrapper_error", func(t *testing.T) {
		clearAPIKeys(t)
		t.Setenv(config.EnvOnbidKey, "onbid-key")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"result": {"resultCode": "11", "resultMsg": "NO_MANDATORY_REQUEST_PARAMETERS_ERROR"}
			}`))
		}))
		defer srv.Close()

		apiErr := asToolError(t, newTestToolset(t).fetchAuctionJSON(context.Background(), srv.URL, listParams(), 1, 20))
		if apiErr.Kind != apierr.KindAPI || apiErr.Code != "11" {
			t.Errorf("kind/code = %q/%q", apiErr.Kind, apiErr.Code)
		}
		if apiErr.Message != "NO_MANDATORY_REQUEST_PARAMETERS_ERROR" {
			t.Errorf("message = %q", apiErr.Message)
		}
	})

	t.Run("error_without_message_uses_fallback", func(t *testing.T) {
		clearAPIKeys(t)
		t.Setenv(config.EnvOnbidKey, "onbid-key")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"header": {"resultCode": "30"}, "body": {}}`))
		}))
		defer srv.Close()

		apiErr := asToolError(t, newTestToolset(t).fetchAuctionJSON(context.Background(), srv.URL, listParams(), 1, 20))
		if apiErr.Message != "Onbid API error" {
			t.Errorf("message = %q", apiErr.Message)
		}
	})

	t.Run("missing_key_is_config_error", func(t *testing.T) {
		clearAPIKeys(t)
		srv := unreachableServer(t)

		apiErr := asToolError(t, newTestToolset(t).fetchAuctionJSON(context.Background(), srv.URL, listParams(), 1, 20))
		if apiErr.Kind != apierr.KindConfig {
			t.Errorf("kind = %q, want %q", apiErr.Kind, apierr.KindConfig)
		}
		if apiErr.Message != "Environment variable ONBID_API_KEY (or DATA_GO_KR_API_KEY) is not set." {
			t.Errorf("message = %q", apiErr.Message)
		}
	})
}

// auctionItemsReq fills the required bid result list filters.
func auctionItemsReq() AuctionItemsInput {
	return AuctionItemsInput{
		OpbdDtStart: "20240101",
		OpbdDtEnd:   "20241231",
		CltrTypeCd:  "0001",
		PrptDivCd:   "0007",
		DspsMthodCd: "0001",
		BidDivCd:    "0001",
	}
}

func TestHandleAuctionItems(t *testing.T) {
	itemsValidationError := func(t *testing.T, in AuctionItemsInput, wantMsg string) {
		t.Helper()
		// No keys resolved: a validation fault must win before config and
		// before any fetch is attempted.
		clearAPIKeys(t)
		_, out, err := newTestToolset(t).handleAuctionItems(context.Background(), nil, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		apiErr := asToolError(t, out)
		if apiErr.Kind != apierr.KindValidation || apiErr.Message != wantMsg {
			t.Errorf("kind/message = %q/%q, want validation %q", apiErr.Kind, apiErr.Message, wantMsg)
		}
	}

	t.Run("negative_page_no", func(t *testing.T) {
		in := auctionItemsReq()
		in.PageNo = intp(-2)
		itemsValidationError(t, in, "page_no must be >= 1")
	})

	t.Run("zero_page_no", func(t *testing.T) {
		in := auctionItemsReq()
		in.PageNo = intp(0)
		itemsValidationError(t, in, "page_no must be >= 1")
	})

	t.Run("zero_num_of_rows", func(t *testing.T) {
		in := auctionItemsReq()
		in.NumOfRows = intp(0)
		itemsValidationError(t, in, "num_of_rows must be >= 1")
	})

	t.Run("required_filters", func(t *testing.T) {
		cases := []struct {
			name  string
			blank func(*AuctionItemsInput)
		}{
			{"opbd_dt_start", func(in *AuctionItemsInput) { in.OpbdDtStart = "" }},
			{"opbd_dt_end", func(in *AuctionItemsInput) { in.OpbdDtEnd = "  " }},
			{"cltr_type_cd", func(in *AuctionItemsInput) { in.CltrTypeCd = "" }},
			{"prpt_div_cd", func(in *AuctionItemsInput) { in.PrptDivCd = "  " }},
			{"dsps_mthod_cd", func(in *AuctionItemsInput) { in.DspsMthodCd = "" }},
			{"bid_div_cd", func(in *AuctionItemsInput) { in.BidDivCd = "" }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				in := auctionItemsReq()
				tc.blank(&in)
				itemsValidationError(t, in, tc.name+" is required")
			})
		}
	})
}

func TestHandleAuctionDetail(t *testing.T) {
	t.Run("missing_cltr_mng_no", func(t *testing.T) {
		clearAPIKeys(t)
		_, out, err := newTestToolset(t).handleAuctionDetail(context.Background(), nil,
			AuctionDetailInput{PbctCdtnNo: "202500123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		apiErr := asToolError(t, out)
		if apiErr.Kind != apierr.KindValidation || apiErr.Message != "cltr_mng_no is required" {
			t.Errorf("kind/message = %q/%q", apiErr.Kind, apiErr.Message)
		}
	})

	t.Run("missing_pbct_cdtn_no", func(t *testing.T) {
		clearAPIKeys(t)
		_, out, err := newTestToolset(t).handleAuctionDetail(context.Background(), nil,
			AuctionDetailInput{CltrMngNo: "100001234"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		apiErr := asToolError(t, out)
		if apiErr.Message != "pbct_cdtn_no is required" {
			t.Errorf("message = %q", apiErr.Message)
		}
	})
}
