// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchkit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tae0y/real-estate-mcp/apierr"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	t.Setenv(EnvInsecureSSL, "")
	t.Setenv(EnvSSLCABundle, "")
	t.Setenv(EnvUseKeychainCA, "")
	client, err := NewClient()
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client
}

func TestFetch(t *testing.T) {
	t.Run("returns_body_text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("X-Probe"); got != "yes" {
				t.Errorf("X-Probe header = %q, want yes", got)
			}
			w.Write([]byte("<response>ok</response>"))
		}))
		defer srv.Close()

		body, apiErr := newTestClient(t).Fetch(context.Background(), srv.URL, map[string]string{"X-Probe": "yes"})
		if apiErr != nil {
			t.Fatalf("unexpected error: %v", apiErr)
		}
		if body != "<response>ok</response>" {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("http_status_is_network_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, apiErr := newTestClient(t).Fetch(context.Background(), srv.URL, nil)
		if apiErr == nil {
			t.Fatal("expected error")
		}
		if apiErr.Kind != apierr.KindNetwork {
			t.Errorf("kind = %q, want %q", apiErr.Kind, apierr.KindNetwork)
		}
		if apiErr.Message != "HTTP error: 500" {
			t.Errorf("message = %q", apiErr.Message)
		}
	})

	t.Run("connection_refused_is_network_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, apiErr := newTestClient(t).Fetch(context.Background(), srv.URL, nil)
		if apiErr == nil {
			t.Fatal("expected error")
		}
		if apiErr.Kind != apierr.KindNetwork {
			t.Errorf("kind = %q, want %q", apiErr.Kind, apierr.KindNetwork)
		}
		if !strings.HasPrefix(apiErr.Message, "Network error: ") {
			t.Errorf("message = %q", apiErr.Message)
		}
	})
}

func TestFetchJSON(t *testing.T) {
	t.Run("decodes_payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"totalCount": 3}`))
		}))
		defer srv.Close()

		payload, apiErr := newTestClient(t).FetchJSON(context.Background(), srv.URL, nil)
		if apiErr != nil {
			t.Fatalf("unexpected error: %v", apiErr)
		}
		m, ok := payload.(map[string]any)
		if !ok || m["totalCount"] != float64(3) {
			t.Errorf("payload = %v", payload)
		}
	})

	t.Run("invalid_json_is_parse_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}))
		defer srv.Close()

		_, apiErr := newTestClient(t).FetchJSON(context.Background(), srv.URL, nil)
		if apiErr == nil {
			t.Fatal("expected error")
		}
		if apiErr.Kind != apierr.KindParse {
			t.Errorf("kind = %q, want %q", apiErr.Kind, apierr.KindParse)
		}
		if !strings.HasPrefix(apiErr.Message, "JSON parse failed: ") {
			t.Errorf("message = %q", apiErr.Message)
		}
	})

	t.Run("status_checked_before_decoding", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("not json either"))
		}))
		defer srv.Close()

		_, apiErr := newTestClient(t).FetchJSON(context.Background(), srv.URL, nil)
		if apiErr == nil {
			t.Fatal("expected error")
		}
		if apiErr.Kind != apierr.KindNetwork {
			t.Errorf("kind = %q, want %q", apiErr.Kind, apierr.KindNetwork)
		}
		if apiErr.Message != "HTTP error: 404" {
			t.Errorf("message = %q", apiErr.Message)
		}
	})
}
