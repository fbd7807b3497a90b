// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package onbid

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	return payload
}

func TestNormalize(t *testing.T) {
	t.Run("nested_response_envelope", func(t *testing.T) {
		payload := decode(t, `{
			"response": {
				"header": {"resultCode": "00", "resultMsg": "OK"},
				"body": {
					"totalCount": 2,
					"items": {"item": [{"CLTR_NM": "a"}, {"CLTR_NM": "b"}]}
				}
			}
		}`)
		code, body, items := Normalize(payload)
		if code != "00" {
			t.Errorf("resultCode = %q, want 00", code)
		}
		if IntField(body, "totalCount", -1) != 2 {
			t.Errorf("totalCount = %d, want 2", IntField(body, "totalCount", -1))
		}
		if len(items) != 2 || items[0]["CLTR_NM"] != "a" {
			t.Errorf("items = %v, want two named entries", items)
		}
	})

	t.Run("header_body_without_response", func(t *testing.T) {
		payload := decode(t, `{
			"header": {"resultCode": "000"},
			"body": {"items": [{"CLTR_NM": "c"}]}
		}`)
		code, _, items := Normalize(payload)
		if code != "000" {
			t.Errorf("resultCode = %q, want 000", code)
		}
		if len(items) != 1 || items[0]["CLTR_NM"] != "c" {
			t.Errorf("items = %v, want single named entry", items)
		}
	})

	t.Run("result_wrapper_error", func(t *testing.T) {
		payload := decode(t, `{
			"result": {"resultCode": "11", "resultMsg": "NO_MANDATORY_REQUEST_PARAMETERS_ERROR"}
		}`)
		code, _, items := Normalize(payload)
		if code != "11" {
			t.Errorf("resultCode = %q, want 11", code)
		}
		if len(items) != 0 {
			t.Errorf("items = %v, want empty", items)
		}
		if got := Message(payload, "fallback"); got != "NO_MANDATORY_REQUEST_PARAMETERS_ERROR" {
			t.Errorf("message = %q", got)
		}
	})

	t.Run("flat_payload", func(t *testing.T) {
		payload := decode(t, `{"resultCode": "00", "item": {"CLTR_NM": "only"}}`)
		code, _, items := Normalize(payload)
		if code != "00" {
			t.Errorf("resultCode = %q, want 00", code)
		}
		if len(items) != 1 || items[0]["CLTR_NM"] != "only" {
			t.Errorf("items = %v, want lone item promoted to slice", items)
		}
	})

	t.Run("numeric_result_code_stringified", func(t *testing.T) {
		payload := decode(t, `{"header": {"resultCode": 0}, "body": {}}`)
		code, _, _ := Normalize(payload)
		if code != "0" {
			t.Errorf("resultCode = %q, want 0", code)
		}
	})

	t.Run("missing_code_is_empty", func(t *testing.T) {
		payload := decode(t, `{"body": {"items": []}, "header": {"resultMsg": "ok"}}`)
		code, _, items := Normalize(payload)
		if code != "" {
			t.Errorf("resultCode = %q, want empty", code)
		}
		if items == nil || len(items) != 0 {
			t.Errorf("items = %v, want empty non-nil slice", items)
		}
	})

	t.Run("non_map_list_entries_dropped", func(t *testing.T) {
		payload := decode(t, `{"body": {"items": [{"CLTR_NM": "keep"}, "junk", 3]}, "header": {"resultCode": "00"}}`)
		_, _, items := Normalize(payload)
		if len(items) != 1 || items[0]["CLTR_NM"] != "keep" {
			t.Errorf("items = %v, want junk entries dropped", items)
		}
	})
}

func TestMessage(t *testing.T) {
	if got := Message(map[string]any{}, "Onbid API error"); got != "Onbid API error" {
		t.Errorf("fallback message = %q", got)
	}
	if got := Message(map[string]any{"resultMsg": "  spaced  "}, "x"); got != "spaced" {
		t.Errorf("trimmed message = %q", got)
	}

	nested := decode(t, `{
		"response": {
			"header": {"resultCode": "99", "resultMsg": "ERROR"},
			"body": {}
		}
	}`)
	if got := Message(nested, "x"); got != "ERROR" {
		t.Errorf("nested header message = %q, want ERROR", got)
	}

	wrapped := decode(t, `{"result": {"resultCode": "11", "resultMsg": "NO_MANDATORY_REQUEST_PARAMETERS_ERROR"}}`)
	if got := Message(wrapped, "x"); got != "NO_MANDATORY_REQUEST_PARAMETERS_ERROR" {
		t.Errorf("result wrapper message = %q", got)
	}
}

func TestIntField(t *testing.T) {
	body := map[string]any{
		"asString":    "42",
		"asNumber":    float64(7),
		"unparseable": "nope",
	}
	if got := IntField(body, "asString", 0); got != 42 {
		t.Errorf("string field = %d, want 42", got)
	}
	if got := IntField(body, "asNumber", 0); got != 7 {
		t.Errorf("number field = %d, want 7", got)
	}
	if got := IntField(body, "unparseable", 9); got != 9 {
		t.Errorf("unparseable field = %d, want fallback 9", got)
	}
	if got := IntField(body, "absent", 5); got != 5 {
		t.Errorf("absent field = %d, want fallback 5", got)
	}
}
