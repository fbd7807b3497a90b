// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package oauth

import (
	"sync"
	"time"
)

// TokenStore holds issued access tokens and their expiry. Implementations
// must be safe for concurrent use.
type TokenStore interface {
	// Save records a token with its expiry time.
	Save(token string, expiry time.Time)

	// Validate reports whether the token exists and has not expired.
	// Expired tokens are evicted on read.
	Validate(token string) bool
}

// MemoryTokenStore is the default in-memory TokenStore.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

// NewMemoryTokenStore creates an empty in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]time.Time)}
}

// Save records a token with its expiry time.
func (s *MemoryTokenStore) Save(token string, expiry time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = expiry
}

// Validate reports whether the token is known and unexpired. An expired
// token is removed so the store does not grow unbounded.
func (s *MemoryTokenStore) Validate(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.tokens, token)
		return false
	}
	return true
}
