// Package session holds the current identity and credentials. It is the
// single writer for authentication state; every other component reads
// through it.
package session

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/shopwire/storefront-client/internal/storage"
	"github.com/shopwire/storefront-client/internal/types"
)

// Durable store keys, one entry per field. The access entry is rewritten
// alone on refresh; all three are written on login and erased on logout.
const (
	keyUser    = "userInfo"
	keyAccess  = "accessToken"
	keyRefresh = "refreshToken"
)

// Store is the process-wide session. isAuthenticated is derived: true iff
// the access credential is non-empty. Updates are atomic to observers; a
// durable-write failure leaves the in-memory state untouched.
type Store struct {
	mu      sync.RWMutex
	user    *types.User
	access  string
	refresh string

	durable storage.Store
}

// New creates a Store backed by the given durable store.
func New(durable storage.Store) *Store {
	return &Store{durable: durable}
}

// Hydrate loads any persisted session at startup. It never fails: absent or
// corrupt entries simply yield an unauthenticated session. No network calls.
func (s *Store) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok, err := s.durable.Get(keyUser); err == nil && ok {
		var u types.User
		if json.Unmarshal([]byte(raw), &u) == nil {
			s.user = &u
		}
	}
	if v, ok, err := s.durable.Get(keyAccess); err == nil && ok {
		s.access = v
	}
	if v, ok, err := s.durable.Get(keyRefresh); err == nil && ok {
		s.refresh = v
	}

	log.Debug().Bool("authenticated", s.access != "").Msg("session hydrated")
}

// LoginSuccess replaces the whole session and persists it. The durable
// writes happen before the in-memory swap so a failure cannot leave a
// half-updated observable state.
func (s *Store) LoginSuccess(user types.User, access, refresh string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.durable.Set(keyUser, string(raw)); err != nil {
		return err
	}
	if err := s.durable.Set(keyAccess, access); err != nil {
		return err
	}
	if err := s.durable.Set(keyRefresh, refresh); err != nil {
		return err
	}

	s.user = &user
	s.access = access
	s.refresh = refresh
	log.Info().Int64("user", user.ID).Str("role", string(user.Role)).Msg("session established")
	return nil
}

// RefreshAccess replaces only the access credential, leaving user and
// refresh credential untouched.
func (s *Store) RefreshAccess(newAccess string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.durable.Set(keyAccess, newAccess); err != nil {
		return err
	}
	s.access = newAccess
	log.Debug().Msg("access credential refreshed")
	return nil
}

// Logout clears everything, in memory and durably. Idempotent: logging out
// of an already-empty session is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil && s.access == "" && s.refresh == "" {
		return
	}

	// Best effort on the durable side; the in-memory clear must happen
	// regardless so the circuit breaker engages.
	if err := s.durable.Delete(keyUser); err != nil {
		log.Warn().Err(err).Msg("session: failed to erase user record")
	}
	if err := s.durable.Delete(keyAccess); err != nil {
		log.Warn().Err(err).Msg("session: failed to erase access credential")
	}
	if err := s.durable.Delete(keyRefresh); err != nil {
		log.Warn().Err(err).Msg("session: failed to erase refresh credential")
	}

	s.user = nil
	s.access = ""
	s.refresh = ""
	log.Info().Msg("session destroyed")
}

// IsAuthenticated reports whether an access credential is held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access != ""
}

// AccessToken returns the current access credential ("" when absent).
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

// RefreshToken returns the current refresh credential ("" when absent).
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

// User returns a copy of the identity record, or nil when logged out.
func (s *Store) User() *types.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}
