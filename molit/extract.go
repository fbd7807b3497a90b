// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package molit extracts flat records from MOLIT real-estate transaction XML
// responses and computes their summary statistics. Upstream schemas are not
// under our control: extraction tolerates extra and missing fields, defaults
// unparsable numerics, and drops only records missing a usable amount.
package molit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tae0y/real-estate-mcp/xmltree"
)

// Record is a flat field→scalar mapping for one transaction.
type Record map[string]any

// Extract parses xmlText according to schema.
//
// Returns (records, "", nil) on success, (nil, code, nil) when the upstream
// result code differs from the schema's success sentinel, and (nil, "", err)
// when the XML itself is malformed. The three outcomes are distinct: a
// semantic error code maps to api_error, malformed XML to parse_error.
func Extract(xmlText string, schema Schema) ([]Record, string, error) {
	root, err := xmltree.Parse(xmlText)
	if err != nil {
		return nil, "", fmt.Errorf("XML parse failed: %w", err)
	}

	resultCode := root.FindText("resultCode")
	if resultCode != schema.SuccessCode {
		return nil, resultCode, nil
	}

	records := []Record{}
	for _, item := range root.FindAll("item") {
		if schema.CancelTag != "" && item.FindText(schema.CancelTag) == "O" {
			continue
		}
		amount, ok := parseAmount(item.FindText(schema.AmountTag))
		if !ok {
			continue
		}

		rec := Record{schema.AmountName: amount}
		for _, f := range schema.Fields {
			raw := item.FindText(f.Tag)
			switch f.Kind {
			case Int:
				rec[f.Name] = parseInt(raw)
			case Float:
				rec[f.Name] = parseFloat(raw)
			default:
				rec[f.Name] = raw
			}
		}
		for name, v := range schema.Constants {
			rec[name] = v
		}
		if schema.MonthlyRent {
			rec["monthly_rent_10k"] = parseMonthlyRent(item)
		}
		rec["trade_date"] = makeDate(item)
		records = append(records, rec)
	}
	return records, "", nil
}

// TotalCount extracts totalCount from a parsed response, defaulting to 0.
func TotalCount(xmlText string) int {
	root, err := xmltree.Parse(xmlText)
	if err != nil {
		return 0
	}
	return parseInt(root.FindText("totalCount"))
}

// parseAmount parses a comma-formatted amount. The bool reports success;
// amounts are the one field extraction never defaults.
func parseAmount(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseInt(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(raw string) float64 {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0.0
	}
	return f
}

func parseMonthlyRent(item *xmltree.Node) int {
	raw := item.FindText("monthlyRent")
	if raw == "" {
		return 0
	}
	n, ok := parseAmount(raw)
	if !ok {
		return 0
	}
	return n
}

// makeDate assembles YYYY-MM-DD from dealYear/dealMonth/dealDay, zero-padding
// month and day. An empty year yields an empty date.
func makeDate(item *xmltree.Node) string {
	year := item.FindText("dealYear")
	if year == "" {
		return ""
	}
	month := zfill(item.FindText("dealMonth"), 2)
	day := zfill(item.FindText("dealDay"), 2)
	return year + "-" + month + "-" + day
}

func zfill(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
