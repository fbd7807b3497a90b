// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package onbid

import (
	"fmt"

	"github.com/tae0y/real-estate-mcp/xmltree"
)

// ListResult is the parsed view of an Onbid XML list response.
type ListResult struct {
	Items      []map[string]any
	TotalCount int

	// ErrorCode/ErrorMessage are set when the upstream result code differs
	// from the success sentinel. An absent result code is not an error:
	// some endpoints omit it on empty result sets.
	ErrorCode    string
	ErrorMessage string
}

// ParseListXML parses an Onbid XML list response into raw tag→text records.
// successCode is the sentinel meaning success for the calling endpoint
// family ("00" for Onbid services); it is explicit per call site. Malformed
// XML returns an error distinct from a semantic failure code.
func ParseListXML(xmlText, successCode string) (*ListResult, error) {
	root, err := xmltree.Parse(xmlText)
	if err != nil {
		return nil, fmt.Errorf("XML parse failed: %w", err)
	}

	resultCode := root.FindText("resultCode")
	if resultCode != successCode {
		return &ListResult{
			Items:        []map[string]any{},
			ErrorCode:    resultCode,
			ErrorMessage: root.FindText("resultMsg"),
		}, nil
	}

	items := []map[string]any{}
	for _, item := range root.FindAll("item") {
		record := map[string]any{}
		for _, child := range item.Children {
			record[child.Tag] = child.Text
		}
		items = append(items, record)
	}

	return &ListResult{Items: items, TotalCount: totalCountXML(root)}, nil
}

// totalCountXML tries the casing variants Onbid services use for the count
// element. A present but unparsable value yields 0.
func totalCountXML(root *xmltree.Node) int {
	for _, tag := range []string{"TotalCount", "totalCount", "totalcount"} {
		if raw := root.FindText(tag); raw != "" {
			n, ok := intFromAny(raw)
			if !ok {
				return 0
			}
			return n
		}
	}
	return 0
}
