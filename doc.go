// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package realestate serves Korean real-estate market data over MCP
// (Model Context Protocol).
//
// The server exposes tools backed by three public data sources:
//
//   - MOLIT actual-transaction XML APIs (apartment, officetel, row-house,
//     detached-house, and commercial sales and leases)
//   - Applyhome subscription notices and statistics via odcloud.kr
//   - Onbid public auction listings, details, and code lookups
//
// Domain logic lives in focused subpackages (molit, onbid, region,
// fetchkit, config, tools, oauth); this package provides the Runtime that
// registers tools and serves them over stdio or HTTP.
//
// # Quick start
//
//	rt := realestate.New(&mcp.Implementation{
//	    Name:    realestate.ServerName,
//	    Version: "1.0.0",
//	}, nil)
//	tools.Register(rt, client)
//
//	// Subprocess mode: serve over stdio
//	err := rt.ServeStdio(ctx)
//
//	// Network mode: serve over HTTP with an OAuth bearer guard
//	result, err := rt.ServeHTTP(ctx, &realestate.HTTPServerOptions{
//	    Addr:  "127.0.0.1:8000",
//	    OAuth: &oauth.Options{ClientID: id, ClientSecret: secret},
//	})
package realestate
