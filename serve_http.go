// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package realestate

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.ngrok.com/ngrok"
	ngrokconfig "golang.ngrok.com/ngrok/config"

	"github.com/tae0y/real-estate-mcp/oauth"
)

// HTTPServerOptions configures HTTP-based serving.
type HTTPServerOptions struct {
	// Addr is the local address to listen on (e.g., "127.0.0.1:8000").
	// Required when Ngrok is nil. When Ngrok is configured, this is optional
	// and defaults to a random available port.
	Addr string

	// Path is the HTTP path for the MCP endpoint. Defaults to "/mcp".
	Path string

	// ReadHeaderTimeout is the timeout for reading request headers.
	// Defaults to 10 seconds.
	ReadHeaderTimeout time.Duration

	// Ngrok configures optional ngrok tunneling. When set, the server
	// is exposed via ngrok and PublicURL in the result is populated.
	Ngrok *NgrokOptions

	// StreamableHTTPOptions are passed to the MCP StreamableHTTP handler.
	StreamableHTTPOptions *mcp.StreamableHTTPOptions

	// OAuth configures OAuth 2.0 client credentials authentication.
	// When set, the MCP endpoint requires a Bearer token, the token
	// endpoint is exposed at /oauth/token (or OAuth.TokenPath), and
	// token introspection at /oauth/verify.
	OAuth *oauth.Options

	// OnReady is called when the server is ready to accept connections,
	// before ServeHTTP blocks. Useful for logging the server URL.
	OnReady func(result *HTTPServerResult)
}

// NgrokOptions configures ngrok tunneling.
type NgrokOptions struct {
	// Authtoken is the ngrok authentication token.
	// If empty, uses the NGROK_AUTHTOKEN environment variable.
	Authtoken string

	// Domain is an optional custom ngrok domain (e.g., "myapp.ngrok.io").
	// Requires a paid ngrok plan.
	Domain string
}

// HTTPServerResult contains information about the running HTTP server.
type HTTPServerResult struct {
	// LocalAddr is the local address the server is listening on.
	LocalAddr string

	// LocalURL is the full local URL including path.
	LocalURL string

	// PublicURL is the ngrok public URL including path, if ngrok is
	// enabled. Empty string otherwise.
	PublicURL string

	// OAuth contains the client credentials if OAuth is enabled.
	// Nil if OAuth is not configured.
	OAuth *oauth.Credentials
}

// ServeHTTP starts an HTTP server for the MCP runtime.
//
// When opts.Ngrok is configured, the server is exposed via ngrok tunnel
// and the returned result includes the public URL.
//
// ServeHTTP blocks until the context is cancelled, at which point it
// performs a graceful shutdown.
func (r *Runtime) ServeHTTP(ctx context.Context, opts *HTTPServerOptions) (*HTTPServerResult, error) {
	if opts == nil {
		opts = &HTTPServerOptions{}
	}

	path := opts.Path
	if path == "" {
		path = "/mcp"
	}

	readHeaderTimeout := opts.ReadHeaderTimeout
	if readHeaderTimeout == 0 {
		readHeaderTimeout = 10 * time.Second
	}

	tokenPath := "/oauth/token" //nolint:gosec // G101: this is a URL path, not credentials
	if opts.OAuth != nil && opts.OAuth.TokenPath != "" {
		tokenPath = opts.OAuth.TokenPath
	}

	// The listener comes first so the base URL is known before handlers
	// are wired up.
	var listener net.Listener
	var err error
	var baseURL string

	result := &HTTPServerResult{}

	if opts.Ngrok != nil {
		listener, err = createNgrokListener(ctx, opts.Ngrok)
		if err != nil {
			return nil, fmt.Errorf("creating ngrok listener: %w", err)
		}
		// ngrok listener address is just hostname, needs the https scheme
		baseURL = "https://" + listener.Addr().String()
		result.PublicURL = baseURL + path

		if opts.Addr != "" {
			result.LocalAddr = opts.Addr
			result.LocalURL = "http://" + opts.Addr + path
		}
	} else {
		if opts.Addr == "" {
			return nil, fmt.Errorf("addr is required when ngrok is not configured")
		}
		listener, err = net.Listen("tcp", opts.Addr)
		if err != nil {
			return nil, fmt.Errorf("listening on %s: %w", opts.Addr, err)
		}
		result.LocalAddr = listener.Addr().String()
		result.LocalURL = "http://" + result.LocalAddr + path
		baseURL = "http://" + result.LocalAddr
	}

	mcpHandler := r.StreamableHTTPHandler(opts.StreamableHTTPOptions)
	mux := http.NewServeMux()

	if opts.OAuth != nil {
		oauthSrv, err := oauth.New(opts.OAuth)
		if err != nil {
			_ = listener.Close()
			return nil, fmt.Errorf("creating oauth server: %w", err)
		}

		mux.Handle(tokenPath, oauthSrv.TokenHandler())
		mux.Handle("/oauth/verify", oauthSrv.VerifyHandler())

		// Placeholders so OAuth discovery does not 404.
		mux.Handle("/oauth/authorize", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			http.Error(w, "Authorization code flow not supported. Use client_credentials grant.", http.StatusNotImplemented)
		}))
		mux.Handle("/oauth/register", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			http.Error(w, "Dynamic client registration not supported.", http.StatusNotImplemented)
		}))

		// OAuth metadata discovery endpoints (RFC 8414 and RFC 9728)
		mux.Handle("/.well-known/oauth-authorization-server", oauth.AuthorizationServerMetadataHandler(tokenPath))
		mux.Handle("/.well-known/oauth-protected-resource", oauth.ProtectedResourceMetadataHandler(path))

		// Wrap MCP handler with auth middleware using ABSOLUTE URL
		resourceMetadataURL := baseURL + "/.well-known/oauth-protected-resource"
		mcpHandler = oauthSrv.BearerAuthMiddleware(resourceMetadataURL)(mcpHandler)

		clientID, clientSecret := oauthSrv.Credentials()
		result.OAuth = &oauth.Credentials{
			ClientID:      clientID,
			ClientSecret:  clientSecret,
			TokenEndpoint: baseURL + tokenPath,
		}
	}

	mux.Handle(path, mcpHandler)

	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if opts.OnReady != nil {
		opts.OnReady(result)
	}

	err = server.Serve(listener)
	if err == http.ErrServerClosed {
		return result, nil
	}
	return result, err
}

// createNgrokListener creates an ngrok tunnel listener.
func createNgrokListener(ctx context.Context, opts *NgrokOptions) (net.Listener, error) {
	authtoken := opts.Authtoken
	if authtoken == "" {
		authtoken = os.Getenv("NGROK_AUTHTOKEN")
	}
	if authtoken == "" {
		return nil, fmt.Errorf("ngrok authtoken is required: set Authtoken or NGROK_AUTHTOKEN environment variable")
	}

	ngrokOpts := []ngrok.ConnectOption{
		ngrok.WithAuthtoken(authtoken),
	}

	httpConfig := ngrokconfig.HTTPEndpoint()
	if opts.Domain != "" {
		httpConfig = ngrokconfig.HTTPEndpoint(ngrokconfig.WithDomain(opts.Domain))
	}

	listener, err := ngrok.Listen(ctx, httpConfig, ngrokOpts...)
	if err != nil {
		return nil, err
	}

	return listener, nil
}
