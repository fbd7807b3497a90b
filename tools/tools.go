// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package tools implements the MCP tools served by the real-estate server:
// region code lookup, MOLIT transaction records, Applyhome subscription
// data, Onbid public auction queries, and financial calculators.
//
// Every tool resolves to a two-variant result: a success payload or an
// *apierr.Error. Both are returned as structured tool output; the presence
// of the "error" key is the only discriminator on the wire, so an LLM
// caller never has to deal with protocol-level failures for domain faults.
package tools

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	realestate "github.com/tae0y/real-estate-mcp"
	"github.com/tae0y/real-estate-mcp/fetchkit"
)

// Toolset carries the shared collaborators of all tool handlers.
type Toolset struct {
	client *fetchkit.Client

	// now is replaceable in tests.
	now func() time.Time
}

// NewToolset creates a Toolset around the given HTTP client.
func NewToolset(client *fetchkit.Client) *Toolset {
	return &Toolset{
		client: client,
		now:    time.Now,
	}
}

// Register creates a Toolset and registers every tool on the runtime.
func Register(rt *realestate.Runtime, client *fetchkit.Client) *Toolset {
	t := NewToolset(client)
	t.registerRegion(rt)
	t.registerMolit(rt)
	t.registerSubscription(rt)
	t.registerAuction(rt)
	t.registerOnbid(rt)
	t.registerFinance(rt)
	t.registerPrompts(rt)
	return t
}

// respond wraps a two-variant result (payload or *apierr.Error) as
// structured tool output.
func respond(v any) (*mcp.CallToolResult, any, error) {
	return nil, v, nil
}

// pagingValue resolves an optional 1-based paging parameter: nil selects
// fallback, while an explicit value below 1 is rejected. An explicit 0 must
// not silently become the default.
func pagingValue(v *int, fallback int) (int, bool) {
	if v == nil {
		return fallback, true
	}
	if *v < 1 {
		return *v, false
	}
	return *v, true
}
