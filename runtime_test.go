// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package realestate

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tae0y/real-estate-mcp/apierr"
)

type echoInput struct {
	Text string `json:"text" jsonschema:"Text to echo back."`
}

type echoOutput struct {
	Echo string `json:"echo"`
}

func TestInMemorySession(t *testing.T) {
	rt := New(nil, nil)

	AddTool(rt, &mcp.Tool{Name: "echo", Description: "Echoes its input."},
		func(ctx context.Context, req *mcp.CallToolRequest, in echoInput) (*mcp.CallToolResult, any, error) {
			if in.Text == "" {
				return nil, apierr.Validation("text is required"), nil
			}
			return nil, echoOutput{Echo: in.Text}, nil
		})

	ctx := context.Background()
	serverSession, clientSession, err := rt.InMemorySession(ctx)
	if err != nil {
		t.Fatalf("InMemorySession failed: %v", err)
	}
	defer serverSession.Close()
	defer clientSession.Close()

	t.Run("success_payload", func(t *testing.T) {
		res, err := clientSession.CallTool(ctx, &mcp.CallToolParams{
			Name:      "echo",
			Arguments: map[string]any{"text": "마포구"},
		})
		if err != nil {
			t.Fatalf("CallTool failed: %v", err)
		}
		if res.IsError {
			t.Fatalf("unexpected tool error: %v", res.Content)
		}
		out, ok := res.StructuredContent.(map[string]any)
		if !ok {
			t.Fatalf("structured content = %T (%v)", res.StructuredContent, res.StructuredContent)
		}
		if out["echo"] != "마포구" {
			t.Errorf("echo = %v", out["echo"])
		}
	})

	t.Run("fault_rides_in_payload", func(t *testing.T) {
		res, err := clientSession.CallTool(ctx, &mcp.CallToolParams{
			Name:      "echo",
			Arguments: map[string]any{"text": ""},
		})
		if err != nil {
			t.Fatalf("CallTool failed: %v", err)
		}
		// Domain faults are data, not protocol errors: the "error" key in
		// the structured payload is the discriminator.
		if res.IsError {
			t.Fatalf("fault escalated to protocol error: %v", res.Content)
		}
		out, ok := res.StructuredContent.(map[string]any)
		if !ok {
			t.Fatalf("structured content = %T", res.StructuredContent)
		}
		if out["error"] != "validation_error" || out["message"] != "text is required" {
			t.Errorf("payload = %v", out)
		}
	})
}

func TestNewDefaults(t *testing.T) {
	rt := New(nil, nil)
	if rt.Server() == nil {
		t.Fatal("expected server to be constructed")
	}
	if rt.impl.Name != ServerName {
		t.Errorf("impl name = %q, want %q", rt.impl.Name, ServerName)
	}
}
