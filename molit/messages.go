// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package molit

// errorMessages resolves MOLIT result codes to human-readable messages.
var errorMessages = map[string]string{
	"03": "No trade records found for the specified region and period.",
	"10": "Invalid API request parameters.",
	"22": "Daily API request limit exceeded.",
	"30": "Unregistered API key.",
	"31": "API key has expired.",
}

// ErrorMessage resolves an upstream result code to its message, falling back
// to a generic one for unknown codes.
func ErrorMessage(code string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "API error code: " + code
}
