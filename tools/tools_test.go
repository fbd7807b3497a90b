// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tools

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tae0y/real-estate-mcp/apierr"
	"github.com/tae0y/real-estate-mcp/config"
	"github.com/tae0y/real-estate-mcp/fetchkit"
)

func newTestToolset(t *testing.T) *Toolset {
	t.Helper()
	t.Setenv(fetchkit.EnvInsecureSSL, "")
	t.Setenv(fetchkit.EnvSSLCABundle, "")
	t.Setenv(fetchkit.EnvUseKeychainCA, "")
	client, err := fetchkit.NewClient()
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return NewToolset(client)
}

func clearAPIKeys(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		config.EnvDataGoKRKey, config.EnvOnbidKey,
		config.EnvOdcloudAPIKey, config.EnvOdcloudSvcKey,
	} {
		t.Setenv(name, "")
	}
}

func intp(n int) *int {
	return &n
}

func asToolError(t *testing.T, v any) *apierr.Error {
	t.Helper()
	apiErr, ok := v.(*apierr.Error)
	if !ok {
		t.Fatalf("result = %T (%v), want *apierr.Error", v, v)
	}
	return apiErr
}

// unreachableServer fails the test on any request; used to prove a code path
// never touches the network.
func unreachableServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s", r.URL)
	}))
	t.Cleanup(srv.Close)
	return srv
}
