// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package realestate

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServeStdio runs the runtime as an MCP server over stdio transport.
//
// This is the standard way to run the server as a subprocess of an MCP
// client. ServeStdio blocks until the client terminates the connection or
// the context is cancelled.
func (r *Runtime) ServeStdio(ctx context.Context) error {
	return r.server.Run(ctx, &mcp.StdioTransport{})
}

// Serve runs the runtime with a custom MCP transport.
func (r *Runtime) Serve(ctx context.Context, transport mcp.Transport) error {
	return r.server.Run(ctx, transport)
}

// StreamableHTTPHandler returns an http.Handler for MCP's Streamable HTTP
// transport. The handler can be mounted on any HTTP server; [Runtime.ServeHTTP]
// does this together with the OAuth guard.
func (r *Runtime) StreamableHTTPHandler(opts *mcp.StreamableHTTPOptions) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return r.server
	}, opts)
}

// InMemorySession creates an in-memory client-server session pair.
//
// This is useful for testing tool behavior with full MCP semantics
// (including JSON-RPC serialization) but without network transport. The
// caller should close the client session when done, which also terminates
// the server session.
func (r *Runtime) InMemorySession(ctx context.Context) (*mcp.ServerSession, *mcp.ClientSession, error) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := r.server.Connect(ctx, serverTransport, nil)
	if err != nil {
		return nil, nil, err
	}

	client := mcp.NewClient(r.impl, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		_ = serverSession.Close() // Best-effort cleanup; already returning an error
		return nil, nil, err
	}

	return serverSession, clientSession, nil
}
