// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchkit

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"os/exec"
)

// Environment variables selecting the TLS verification policy, in precedence
// order: insecure flag, explicit CA bundle path, macOS keychain export, then
// default verification.
const (
	EnvInsecureSSL      = "REAL_ESTATE_INSECURE_SSL"
	EnvSSLCABundle      = "REAL_ESTATE_SSL_CA_BUNDLE"
	EnvUseKeychainCA    = "REAL_ESTATE_USE_MACOS_KEYCHAIN_CA"
	systemKeychainPath  = "/Library/Keychains/System.keychain"
	keychainExportsPath = "/System/Library/Keychains/SystemRootCertificates.keychain"
)

// keychainCABundle exports the trusted certificates from the macOS keychains
// as PEM. Overridable for tests.
var keychainCABundle = func() ([]byte, error) {
	out, err := exec.Command(
		"/usr/bin/security", "find-certificate", "-a", "-p",
		systemKeychainPath, keychainExportsPath,
	).Output()
	if err != nil {
		return nil, fmt.Errorf("exporting keychain certificates: %w", err)
	}
	return out, nil
}

func envFlag(name string) bool {
	switch os.Getenv(name) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// ResolveTLSConfig returns the TLS configuration selected by the
// environment, or nil when default verification applies.
func ResolveTLSConfig() (*tls.Config, error) {
	if envFlag(EnvInsecureSSL) {
		return &tls.Config{InsecureSkipVerify: true}, nil //nolint:gosec // G402: explicit operator opt-out
	}

	if path := os.Getenv(EnvSSLCABundle); path != "" {
		pem, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading CA bundle %s: %w", path, err)
		}
		return poolConfig(pem, path)
	}

	if envFlag(EnvUseKeychainCA) {
		pem, err := keychainCABundle()
		if err != nil {
			return nil, err
		}
		return poolConfig(pem, "macOS keychain")
	}

	return nil, nil
}

func poolConfig(pem []byte, source string) (*tls.Config, error) {
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates parsed from %s", source)
	}
	return &tls.Config{RootCAs: pool}, nil
}
