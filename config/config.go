// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package config resolves API credentials and server settings from the
// environment. Nothing is cached: every lookup reads the environment so
// tests can flip variables between calls.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/tae0y/real-estate-mcp/apierr"
)

// Environment variable names.
const (
	EnvDataGoKRKey     = "DATA_GO_KR_API_KEY"
	EnvOnbidKey        = "ONBID_API_KEY"
	EnvOdcloudAPIKey   = "ODCLOUD_API_KEY"
	EnvOdcloudSvcKey   = "ODCLOUD_SERVICE_KEY"
	EnvOAuthClientID   = "OAUTH_CLIENT_ID"
	EnvOAuthSecret     = "OAUTH_CLIENT_SECRET"
	EnvOAuthTokenTTL   = "OAUTH_TOKEN_TTL"
	EnvUserinfoURL     = "OAUTH_USERINFO_ENDPOINT"
	DefaultTokenTTLSec = 3600
)

// OdcloudMode says how to present the odcloud.kr credential.
type OdcloudMode string

const (
	// OdcloudAuthHeader sends the bare key as the Authorization header value.
	OdcloudAuthHeader OdcloudMode = "authorization"
	// OdcloudServiceKey sends the key as a serviceKey query parameter.
	OdcloudServiceKey OdcloudMode = "serviceKey"
)

// LoadDotenv loads a .env file from the working directory if one exists.
// A missing file is not an error.
func LoadDotenv() {
	_ = godotenv.Load()
}

// DataGoKRKey returns the data.go.kr service key used by the MOLIT
// transaction APIs.
func DataGoKRKey() (string, *apierr.Error) {
	key := os.Getenv(EnvDataGoKRKey)
	if key == "" {
		return "", apierr.Config("Environment variable DATA_GO_KR_API_KEY is not set.")
	}
	return key, nil
}

// OnbidKey returns the Onbid service key, falling back to the data.go.kr
// key when no dedicated one is set.
func OnbidKey() (string, *apierr.Error) {
	key := os.Getenv(EnvOnbidKey)
	if key == "" {
		key = os.Getenv(EnvDataGoKRKey)
	}
	if key == "" {
		return "", apierr.Config("Environment variable ONBID_API_KEY (or DATA_GO_KR_API_KEY) is not set.")
	}
	return key, nil
}

// OdcloudKey returns the odcloud.kr credential and the mode it should be
// sent in. ODCLOUD_API_KEY wins and uses the Authorization header;
// ODCLOUD_SERVICE_KEY and the data.go.kr fallback use the serviceKey
// query parameter.
func OdcloudKey() (OdcloudMode, string, *apierr.Error) {
	if key := os.Getenv(EnvOdcloudAPIKey); key != "" {
		return OdcloudAuthHeader, key, nil
	}
	if key := os.Getenv(EnvOdcloudSvcKey); key != "" {
		return OdcloudServiceKey, key, nil
	}
	if key := os.Getenv(EnvDataGoKRKey); key != "" {
		return OdcloudServiceKey, key, nil
	}
	return "", "", apierr.Config(
		"Environment variable ODCLOUD_API_KEY (or ODCLOUD_SERVICE_KEY, or DATA_GO_KR_API_KEY) is not set.")
}

// OAuth holds the token issuer settings.
type OAuth struct {
	ClientID     string
	ClientSecret string
	TokenTTLSec  int
	UserinfoURL  string
}

// OAuthFromEnv reads the OAuth settings. ClientID and ClientSecret may be
// empty, in which case the HTTP transport runs without a bearer guard.
func OAuthFromEnv() OAuth {
	ttl := DefaultTokenTTLSec
	if raw := os.Getenv(EnvOAuthTokenTTL); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			ttl = n
		}
	}
	return OAuth{
		ClientID:     os.Getenv(EnvOAuthClientID),
		ClientSecret: os.Getenv(EnvOAuthSecret),
		TokenTTLSec:  ttl,
		UserinfoURL:  os.Getenv(EnvUserinfoURL),
	}
}
