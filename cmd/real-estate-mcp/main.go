// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command real-estate-mcp runs the real-estate MCP server over stdio or
// streamable HTTP.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	realestate "github.com/tae0y/real-estate-mcp"
	"github.com/tae0y/real-estate-mcp/config"
	"github.com/tae0y/real-estate-mcp/fetchkit"
	"github.com/tae0y/real-estate-mcp/oauth"
	"github.com/tae0y/real-estate-mcp/tools"
)

const version = "1.0.0"

func main() {
	transport := flag.String("transport", "stdio", "transport: stdio or http")
	addr := flag.String("addr", "127.0.0.1:8000", "listen address for http transport")
	mcpPath := flag.String("mcp-path", "/mcp", "HTTP path for the MCP endpoint")
	useNgrok := flag.Bool("ngrok", false, "expose the http transport via ngrok (requires NGROK_AUTHTOKEN)")
	flag.Parse()

	// Logs go to stderr: stdout belongs to the MCP stdio transport.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	config.LoadDotenv()

	client, err := fetchkit.NewClient()
	if err != nil {
		logger.Error("resolving TLS policy", "err", err)
		os.Exit(1)
	}

	rt := realestate.New(&mcp.Implementation{
		Name:    realestate.ServerName,
		Version: version,
	}, nil)
	tools.Register(rt, client)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *transport {
	case "stdio":
		if err := rt.ServeStdio(ctx); err != nil {
			logger.Error("stdio server failed", "err", err)
			os.Exit(1)
		}
	case "http":
		opts := &realestate.HTTPServerOptions{
			Addr: *addr,
			Path: *mcpPath,
			OnReady: func(result *realestate.HTTPServerResult) {
				logger.Info("mcp server ready",
					"local_url", result.LocalURL,
					"public_url", result.PublicURL)
				if result.OAuth != nil {
					logger.Info("oauth enabled", "token_endpoint", result.OAuth.TokenEndpoint)
				}
			},
		}
		if *useNgrok {
			opts.Ngrok = &realestate.NgrokOptions{}
		}
		if oc := config.OAuthFromEnv(); oc.ClientID != "" && oc.ClientSecret != "" {
			opts.OAuth = &oauth.Options{
				ClientID:     oc.ClientID,
				ClientSecret: oc.ClientSecret,
				TokenExpiry:  time.Duration(oc.TokenTTLSec) * time.Second,
				UserinfoURL:  oc.UserinfoURL,
				Logger:       logger,
			}
		}
		if _, err := rt.ServeHTTP(ctx, opts); err != nil {
			logger.Error("http server failed", "err", err)
			os.Exit(1)
		}
	default:
		logger.Error("unknown transport", "transport", *transport)
		os.Exit(2)
	}
}
