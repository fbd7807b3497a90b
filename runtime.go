// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package realestate

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerName is the MCP implementation name announced to clients.
const ServerName = "real-estate"

// Runtime wraps an MCP server and its transports. Tools are registered
// with [AddTool] before serving begins; registration is not safe to mix
// with live sessions.
type Runtime struct {
	impl   *mcp.Implementation
	server *mcp.Server
}

// New creates a Runtime for the given implementation info. A nil impl
// defaults to the real-estate server identity.
func New(impl *mcp.Implementation, opts *mcp.ServerOptions) *Runtime {
	if impl == nil {
		impl = &mcp.Implementation{Name: ServerName, Version: "dev"}
	}
	return &Runtime{
		impl:   impl,
		server: mcp.NewServer(impl, opts),
	}
}

// Server exposes the underlying MCP server for registration helpers.
func (r *Runtime) Server() *mcp.Server {
	return r.server
}

// AddTool registers a typed tool handler on the runtime. The input type's
// JSON schema is derived from its struct tags.
func AddTool[In, Out any](r *Runtime, tool *mcp.Tool, handler mcp.ToolHandlerFor[In, Out]) {
	mcp.AddTool(r.server, tool, handler)
}

// AddPrompt registers a prompt on the runtime. The handler is called when
// clients request the prompt via prompts/get.
func (r *Runtime) AddPrompt(p *mcp.Prompt, h mcp.PromptHandler) {
	r.server.AddPrompt(p, h)
}
