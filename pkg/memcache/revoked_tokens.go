// pkg/memcache/revoked_tokens.go
package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers logged-out token ids until the tokens would
// have expired anyway.
type RevokedTokenStore interface {
	Revoke(tokenID string, expiresAt time.Time)

	// IsRevoked reports whether tokenID was revoked and has not expired yet.
	IsRevoked(tokenID string) bool

	// Sweep drops expired entries and returns how many were removed.
	Sweep() int
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(tokenID string, expiresAt time.Time) {
	if tokenID == "" || !s.now().Before(expiresAt) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[tokenID] = expiresAt
}

func (s *RevokedTokens) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	expiresAt, ok := s.data[tokenID]
	s.mu.RUnlock()
	if !ok {
		return false
	}

	if s.now().After(expiresAt) {
		s.mu.Lock()
		delete(s.data, tokenID) // cleanup expired
		s.mu.Unlock()
		return false
	}
	return true
}

func (s *RevokedTokens) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, expiresAt := range s.data {
		if now.After(expiresAt) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}
