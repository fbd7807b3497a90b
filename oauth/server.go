// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package oauth implements the minimal OAuth 2.0 client_credentials token
// issuer that guards the HTTP transport: a token endpoint, a verify
// endpoint, bearer middleware, and the discovery metadata MCP clients
// expect (RFC 8414 and RFC 9728).
package oauth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/grokify/mogo/log/slogutil"
)

// Options configures the OAuth server.
type Options struct {
	// ClientID is the OAuth client ID. If empty, one is auto-generated.
	ClientID string

	// ClientSecret is the OAuth client secret. If empty, one is auto-generated.
	ClientSecret string

	// TokenExpiry is how long access tokens are valid. Defaults to 1 hour.
	TokenExpiry time.Duration

	// TokenPath is the path for the token endpoint. Defaults to "/oauth/token".
	TokenPath string

	// Store holds issued tokens. If nil, an in-memory store is used.
	Store TokenStore

	// UserinfoURL, when set, enables delegated introspection for structured
	// (JWT-shaped) bearer tokens: the token is forwarded to this endpoint
	// and accepted only on a 2xx response.
	UserinfoURL string

	// Logger is used for debug logging. If nil, uses slog.Default().
	Logger *slog.Logger
}

// Credentials contains the client credentials for the server.
type Credentials struct {
	// ClientID is the OAuth client ID (provided or auto-generated).
	ClientID string

	// ClientSecret is the OAuth client secret (provided or auto-generated).
	ClientSecret string

	// TokenEndpoint is the full URL of the token endpoint.
	TokenEndpoint string
}

// Server issues and validates bearer tokens for the client_credentials grant.
type Server struct {
	clientID     string
	clientSecret string
	tokenExpiry  time.Duration
	userinfoURL  string
	store        TokenStore
	logger       *slog.Logger
	httpClient   *http.Client
}

// tokenResponse is the OAuth 2.0 token response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// tokenError is the OAuth 2.0 error response.
type tokenError struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// authorizationServerMetadata is the OAuth 2.0 Authorization Server Metadata (RFC 8414).
type authorizationServerMetadata struct {
	Issuer                            string   `json:"issuer"`
	AuthorizationEndpoint             string   `json:"authorization_endpoint"`
	TokenEndpoint                     string   `json:"token_endpoint"`
	GrantTypesSupported               []string `json:"grant_types_supported,omitempty"`
	TokenEndpointAuthMethodsSupported []string `json:"token_endpoint_auth_methods_supported,omitempty"`
	ResponseTypesSupported            []string `json:"response_types_supported"`
}

// protectedResourceMetadata is the OAuth 2.0 Protected Resource Metadata (RFC 9728).
type protectedResourceMetadata struct {
	Resource               string   `json:"resource"`
	AuthorizationServers   []string `json:"authorization_servers,omitempty"`
	BearerMethodsSupported []string `json:"bearer_methods_supported,omitempty"`
}

// New creates an OAuth server with the given options.
func New(opts *Options) (*Server, error) {
	if opts == nil {
		opts = &Options{}
	}

	clientID := opts.ClientID
	if clientID == "" {
		var err error
		clientID, err = generateSecureToken(16)
		if err != nil {
			return nil, err
		}
	}

	clientSecret := opts.ClientSecret
	if clientSecret == "" {
		var err error
		clientSecret, err = generateSecureToken(32)
		if err != nil {
			return nil, err
		}
	}

	tokenExpiry := opts.TokenExpiry
	if tokenExpiry == 0 {
		tokenExpiry = time.Hour
	}

	store := opts.Store
	if store == nil {
		store = NewMemoryTokenStore()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenExpiry:  tokenExpiry,
		userinfoURL:  opts.UserinfoURL,
		store:        store,
		logger:       logger.With("component", "oauth"),
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Credentials returns the client credentials.
func (s *Server) Credentials() (clientID, clientSecret string) {
	return s.clientID, s.clientSecret
}

// TokenHandler returns an http.Handler for the OAuth token endpoint.
// This implements the client_credentials grant type per RFC 6749.
func (s *Server) TokenHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			s.writeError(w, http.StatusMethodNotAllowed, "invalid_request", "Method not allowed")
			return
		}

		if err := r.ParseForm(); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request")
			return
		}

		grantType := r.FormValue("grant_type")
		if grantType != "client_credentials" {
			s.writeError(w, http.StatusBadRequest, "unsupported_grant_type", "Only client_credentials grant is supported")
			return
		}

		// Credentials arrive via Basic auth or the form body.
		clientID, clientSecret, ok := r.BasicAuth()
		if !ok {
			clientID = r.FormValue("client_id")
			clientSecret = r.FormValue("client_secret")
		}

		if !s.validateCredentials(clientID, clientSecret) {
			s.writeError(w, http.StatusUnauthorized, "invalid_client", "Invalid client credentials")
			return
		}

		accessToken, err := generateSecureToken(32)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, "server_error", "Failed to generate token")
			return
		}

		s.store.Save(accessToken, time.Now().Add(s.tokenExpiry))
		s.logDebug(r.Context(), "token issued", "client_id", clientID)

		resp := tokenResponse{
			AccessToken: accessToken,
			TokenType:   "Bearer",
			ExpiresIn:   int(s.tokenExpiry.Seconds()),
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Pragma", "no-cache")
		_ = json.NewEncoder(w).Encode(resp)
	})
}

// VerifyHandler returns an http.Handler for GET /oauth/verify. A valid
// bearer token yields 200 with an empty JSON object, anything else 401.
func (s *Server) VerifyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			s.writeError(w, http.StatusMethodNotAllowed, "invalid_request", "Method not allowed")
			return
		}

		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			s.writeError(w, http.StatusUnauthorized, "missing_token", "")
			return
		}

		token := strings.TrimPrefix(auth, "Bearer ")
		if !s.validateToken(r.Context(), token) {
			s.writeError(w, http.StatusUnauthorized, "invalid_token", "")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{}\n"))
	})
}

// BearerAuthMiddleware returns middleware that validates Bearer tokens.
func (s *Server) BearerAuthMiddleware(resourceMetadataURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				w.Header().Set("WWW-Authenticate", fmt.Sprintf(`Bearer resource_metadata="%s"`, resourceMetadataURL))
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(auth, "Bearer ")
			if !s.validateToken(r.Context(), token) {
				w.Header().Set("WWW-Authenticate", fmt.Sprintf(`Bearer resource_metadata="%s", error="invalid_token"`, resourceMetadataURL))
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// validateToken accepts a bearer token either from the local store or, for
// structured tokens, via delegated introspection.
func (s *Server) validateToken(ctx context.Context, token string) bool {
	if s.store.Validate(token) {
		return true
	}
	if strings.Contains(token, ".") && s.userinfoURL != "" {
		return s.introspectJWT(ctx, token)
	}
	return false
}

// introspectJWT checks a JWT-shaped token against the configured userinfo
// endpoint. The signature is not verified locally; the issuer is the
// authority, this side only rejects tokens that are expired on their face
// before spending a network call.
func (s *Server) introspectJWT(ctx context.Context, token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		s.logDebug(ctx, "malformed structured token", "err", err)
		return false
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && time.Now().After(exp.Time) {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userinfoURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logDebug(ctx, "userinfo introspection failed", "err", err)
		return false
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// AuthorizationServerMetadataHandler returns an http.Handler for the OAuth 2.0
// Authorization Server Metadata endpoint (RFC 8414).
// This should be mounted at /.well-known/oauth-authorization-server
// The tokenPath is the path to the token endpoint (e.g., "/oauth/token").
func AuthorizationServerMetadataHandler(tokenPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		baseURL := getBaseURL(r)

		metadata := &authorizationServerMetadata{
			Issuer:                            baseURL,
			AuthorizationEndpoint:             baseURL + "/oauth/authorize",
			TokenEndpoint:                     baseURL + tokenPath,
			GrantTypesSupported:               []string{"client_credentials"},
			TokenEndpointAuthMethodsSupported: []string{"client_secret_basic", "client_secret_post"},
			ResponseTypesSupported:            []string{"code"},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(metadata)
	})
}

// ProtectedResourceMetadataHandler returns an http.Handler for the OAuth 2.0
// Protected Resource Metadata endpoint (RFC 9728).
// This should be mounted at /.well-known/oauth-protected-resource
// The mcpPath is the path to the MCP endpoint (e.g., "/mcp").
func ProtectedResourceMetadataHandler(mcpPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		baseURL := getBaseURL(r)

		metadata := &protectedResourceMetadata{
			Resource:               baseURL + mcpPath,
			AuthorizationServers:   []string{baseURL},
			BearerMethodsSupported: []string{"header"},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(metadata)
	})
}

// getBaseURL derives the base URL from the request (scheme + host).
func getBaseURL(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil {
		// X-Forwarded-Proto is set by proxies and ngrok.
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		} else {
			scheme = "http"
		}
	}
	return scheme + "://" + r.Host
}

// validateCredentials validates client credentials using constant-time comparison.
func (s *Server) validateCredentials(clientID, clientSecret string) bool {
	idMatch := subtle.ConstantTimeCompare([]byte(clientID), []byte(s.clientID)) == 1
	secretMatch := subtle.ConstantTimeCompare([]byte(clientSecret), []byte(s.clientSecret)) == 1
	return idMatch && secretMatch
}

// writeError writes an OAuth error response.
func (s *Server) writeError(w http.ResponseWriter, status int, errCode, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(tokenError{
		Error:       errCode,
		Description: description,
	})
}

func (s *Server) logDebug(ctx context.Context, msg string, args ...any) {
	logger := slogutil.LoggerFromContext(ctx, s.logger)
	logger.Debug(msg, args...)
}

// generateSecureToken generates a cryptographically secure random token.
func generateSecureToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(bytes), nil
}
