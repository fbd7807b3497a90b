// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package onbid normalizes Onbid public-auction API responses. The services
// answer in several envelope shapes (and in both JSON and XML); this package
// reduces all of them to a uniform (result code, body, items) view.
package onbid

import (
	"strconv"
	"strings"
)

// envelopeShape is the closed set of wrapper layouts Onbid JSON responses
// arrive in, checked in priority order.
type envelopeShape int

const (
	// shapeNested: {"response": {"header": {...}, "body": {...}}}.
	shapeNested envelopeShape = iota
	// shapeHeaderBody: flat {"header": {...}, "body": {...}} without the
	// response wrapper (seen from B010003).
	shapeHeaderBody
	// shapeResult: {"result": {...}} error-only payloads where one object
	// doubles as header and body.
	shapeResult
	// shapeFlat: header and body fields as top-level siblings.
	shapeFlat
)

func detectShape(payload map[string]any) envelopeShape {
	if asMap(payload["response"]) != nil {
		return shapeNested
	}
	if asMap(payload["header"]) != nil && asMap(payload["body"]) != nil {
		return shapeHeaderBody
	}
	if asMap(payload["result"]) != nil {
		return shapeResult
	}
	return shapeFlat
}

// Normalize extracts the uniform (resultCode, body, items) triple from any of
// the known envelope shapes. A lone item mapping becomes a single-element
// slice; non-mapping list entries are dropped.
func Normalize(payload map[string]any) (string, map[string]any, []map[string]any) {
	var header, body map[string]any

	switch detectShape(payload) {
	case shapeNested:
		response := asMap(payload["response"])
		header = asMap(response["header"])
		body = asMap(response["body"])
	case shapeHeaderBody:
		header = asMap(payload["header"])
		body = asMap(payload["body"])
	case shapeResult:
		result := asMap(payload["result"])
		header = result
		body = result
	case shapeFlat:
		header = payload
		body = payload
	}

	resultCode := ""
	if v, ok := header["resultCode"]; ok && v != nil {
		resultCode = stringify(v)
	}
	return resultCode, body, extractItems(body)
}

func extractItems(body map[string]any) []map[string]any {
	var raw any
	switch v := body["items"].(type) {
	case map[string]any:
		raw = v["item"]
	case []any:
		raw = v
	default:
		raw = body["item"]
	}

	switch v := raw.(type) {
	case map[string]any:
		return []map[string]any{v}
	case []any:
		out := []map[string]any{}
		for _, entry := range v {
			if m, ok := entry.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return []map[string]any{}
	}
}

// Message returns the trimmed resultMsg from the envelope's header, trying
// the top level next, and fallback when neither carries one.
func Message(payload map[string]any, fallback string) string {
	msg := strings.TrimSpace(stringify(headerOf(payload)["resultMsg"]))
	if msg == "" {
		msg = strings.TrimSpace(stringify(payload["resultMsg"]))
	}
	if msg == "" {
		return fallback
	}
	return msg
}

// headerOf locates the header object of the envelope; for the result-wrapper
// and flat shapes the header is the object that also carries the body fields.
func headerOf(payload map[string]any) map[string]any {
	switch detectShape(payload) {
	case shapeNested:
		return asMap(asMap(payload["response"])["header"])
	case shapeHeaderBody:
		return asMap(payload["header"])
	case shapeResult:
		return asMap(payload["result"])
	default:
		return payload
	}
}

// IntField reads an integer field from a body, tolerating string and number
// encodings. Unparsable or absent values yield the fallback.
func IntField(body map[string]any, key string, fallback int) int {
	n, ok := intFromAny(body[key])
	if !ok {
		return fallback
	}
	return n
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	if len(m) == 0 {
		return nil
	}
	return m
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func intFromAny(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	case int:
		return t, true
	default:
		return 0, false
	}
}
