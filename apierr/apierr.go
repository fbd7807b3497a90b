// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package apierr defines the closed error taxonomy shared by every tool.
//
// Each layer tags the fault it detects and no outer layer re-wraps or
// downgrades the kind (first fault wins). Tools recover every *Error into a
// uniform response envelope; the kind never escapes as a Go error to MCP
// callers.
package apierr

// Kind classifies a tool fault.
type Kind string

const (
	// KindConfig means a required credential or setting is absent.
	KindConfig Kind = "config_error"

	// KindValidation means caller input is out of contract, detected
	// before any network activity.
	KindValidation Kind = "validation_error"

	// KindNetwork means a transport-level fault: timeout, connection
	// failure, or a non-2xx upstream status.
	KindNetwork Kind = "network_error"

	// KindParse means a response body could not be decoded as expected
	// (malformed XML or JSON).
	KindParse Kind = "parse_error"

	// KindAPI means the upstream service understood the request but
	// signaled a business failure with its own result code.
	KindAPI Kind = "api_error"
)

// Error is a tagged tool fault. Code is set only for KindAPI, carrying the
// upstream result code.
type Error struct {
	Kind    Kind   `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return string(e.Kind) + " [" + e.Code + "]: " + e.Message
	}
	return string(e.Kind) + ": " + e.Message
}

// Config returns a config_error.
func Config(message string) *Error {
	return &Error{Kind: KindConfig, Message: message}
}

// Validation returns a validation_error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Network returns a network_error.
func Network(message string) *Error {
	return &Error{Kind: KindNetwork, Message: message}
}

// Parse returns a parse_error.
func Parse(message string) *Error {
	return &Error{Kind: KindParse, Message: message}
}

// API returns an api_error carrying the upstream result code.
func API(code, message string) *Error {
	return &Error{Kind: KindAPI, Code: code, Message: message}
}
