// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/tae0y/real-estate-mcp/apierr"
)

func clearKeys(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvDataGoKRKey, EnvOnbidKey, EnvOdcloudAPIKey, EnvOdcloudSvcKey} {
		t.Setenv(name, "")
	}
}

func TestDataGoKRKey(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		clearKeys(t)
		t.Setenv(EnvDataGoKRKey, "molit-key")
		key, apiErr := DataGoKRKey()
		if apiErr != nil {
			t.Fatalf("unexpected error: %v", apiErr)
		}
		if key != "molit-key" {
			t.Errorf("key = %q", key)
		}
	})

	t.Run("missing", func(t *testing.T) {
		clearKeys(t)
		_, apiErr := DataGoKRKey()
		if apiErr == nil {
			t.Fatal("expected config error")
		}
		if apiErr.Kind != apierr.KindConfig {
			t.Errorf("kind = %q, want %q", apiErr.Kind, apierr.KindConfig)
		}
		if apiErr.Message != "Environment variable DATA_GO_KR_API_KEY is not set." {
			t.Errorf("message = %q", apiErr.Message)
		}
	})
}

func TestOnbidKey(t *testing.T) {
	t.Run("dedicated_key_wins", func(t *testing.T) {
		clearKeys(t)
		t.Setenv(EnvOnbidKey, "onbid-key")
		t.Setenv(EnvDataGoKRKey, "molit-key")
		key, apiErr := OnbidKey()
		if apiErr != nil {
			t.Fatalf("unexpected error: %v", apiErr)
		}
		if key != "onbid-key" {
			t.Errorf("key = %q, want onbid-key", key)
		}
	})

	t.Run("falls_back_to_data_go_kr", func(t *testing.T) {
		clearKeys(t)
		t.Setenv(EnvDataGoKRKey, "molit-key")
		key, apiErr := OnbidKey()
		if apiErr != nil {
			t.Fatalf("unexpected error: %v", apiErr)
		}
		if key != "molit-key" {
			t.Errorf("key = %q, want molit-key", key)
		}
	})

	t.Run("missing", func(t *testing.T) {
		clearKeys(t)
		_, apiErr := OnbidKey()
		if apiErr == nil {
			t.Fatal("expected config error")
		}
		if apiErr.Message != "Environment variable ONBID_API_KEY (or DATA_GO_KR_API_KEY) is not set." {
			t.Errorf("message = %q", apiErr.Message)
		}
	})
}

func TestOdcloudKey(t *testing.T) {
	t.Run("api_key_uses_authorization_header", func(t *testing.T) {
		clearKeys(t)
		t.Setenv(EnvOdcloudAPIKey, "odcloud-key")
		t.Setenv(EnvOdcloudSvcKey, "svc-key")
		mode, key, apiErr := OdcloudKey()
		if apiErr != nil {
			t.Fatalf("unexpected error: %v", apiErr)
		}
		if mode != OdcloudAuthHeader || key != "odcloud-key" {
			t.Errorf("mode/key = %q/%q", mode, key)
		}
	})

	t.Run("service_key_uses_query_param", func(t *testing.T) {
		clearKeys(t)
		t.Setenv(EnvOdcloudSvcKey, "svc-key")
		mode, key, apiErr := OdcloudKey()
		if apiErr != nil {
			t.Fatalf("unexpected error: %v", apiErr)
		}
		if mode != OdcloudServiceKey || key != "svc-key" {
			t.Errorf("mode/key = %q/%q", mode, key)
		}
	})

	t.Run("data_go_kr_fallback", func(t *testing.T) {
		clearKeys(t)
		t.Setenv(EnvDataGoKRKey, "molit-key")
		mode, key, apiErr := OdcloudKey()
		if apiErr != nil {
			t.Fatalf("unexpected error: %v", apiErr)
		}
		if mode != OdcloudServiceKey || key != "molit-key" {
			t.Errorf("mode/key = %q/%q", mode, key)
		}
	})

	t.Run("missing", func(t *testing.T) {
		clearKeys(t)
		_, _, apiErr := OdcloudKey()
		if apiErr == nil {
			t.Fatal("expected config error")
		}
		if apiErr.Message != "Environment variable ODCLOUD_API_KEY (or ODCLOUD_SERVICE_KEY, or DATA_GO_KR_API_KEY) is not set." {
			t.Errorf("message = %q", apiErr.Message)
		}
	})
}

func TestOAuthFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvOAuthClientID, "")
		t.Setenv(EnvOAuthSecret, "")
		t.Setenv(EnvOAuthTokenTTL, "")
		cfg := OAuthFromEnv()
		if cfg.TokenTTLSec != DefaultTokenTTLSec {
			t.Errorf("ttl = %d, want %d", cfg.TokenTTLSec, DefaultTokenTTLSec)
		}
		if cfg.ClientID != "" || cfg.ClientSecret != "" {
			t.Errorf("credentials should be empty: %+v", cfg)
		}
	})

	t.Run("ttl_override", func(t *testing.T) {
		t.Setenv(EnvOAuthTokenTTL, "120")
		if cfg := OAuthFromEnv(); cfg.TokenTTLSec != 120 {
			t.Errorf("ttl = %d, want 120", cfg.TokenTTLSec)
		}
	})

	t.Run("invalid_ttl_keeps_default", func(t *testing.T) {
		t.Setenv(EnvOAuthTokenTTL, "soon")
		if cfg := OAuthFromEnv(); cfg.TokenTTLSec != DefaultTokenTTLSec {
			t.Errorf("ttl = %d, want default", cfg.TokenTTLSec)
		}
	})
}
