// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package region resolves human place names to the 5-digit legal
// district codes the transaction APIs take as LAWD_CD.
package region

import "strings"

// Match is one candidate district for a query.
type Match struct {
	RegionCode string `json:"region_code"`
	FullName   string `json:"full_name"`
}

// Result is a successful resolution. RegionCode and FullName describe the
// best match, Matches lists every district the query matched so a caller
// can disambiguate.
type Result struct {
	RegionCode string  `json:"region_code"`
	FullName   string  `json:"full_name"`
	Matches    []Match `json:"matches"`
}

// Resolve finds districts whose full name contains every whitespace token
// of the query. The best match is the shortest matching name, which favors
// the district itself over its sub-districts. Returns false when nothing
// matches.
func Resolve(query string) (*Result, bool) {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return nil, false
	}
	var matches []Match
	best := -1
	for i, e := range table {
		if !containsAll(e.name, tokens) {
			continue
		}
		matches = append(matches, Match{RegionCode: e.code[:5], FullName: e.name})
		if best < 0 || len(e.name) < len(table[best].name) {
			best = i
		}
	}
	if best < 0 {
		return nil, false
	}
	return &Result{
		RegionCode: table[best].code[:5],
		FullName:   table[best].name,
		Matches:    matches,
	}, true
}

func containsAll(name string, tokens []string) bool {
	for _, t := range tokens {
		if !strings.Contains(name, t) {
			return false
		}
	}
	return true
}
