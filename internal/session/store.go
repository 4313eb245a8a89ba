package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/eventdesk/eventdesk/internal/domain/model"
)

// PersistResult reports the outcome of a durable write. Persistence is
// best-effort: the in-memory state is always updated, and a failed durable
// write is surfaced here instead of being swallowed so callers can log it.
type PersistResult struct {
	// Persisted is true when the durable backend accepted the write.
	Persisted bool
	// Err holds the backend failure when Persisted is false.
	Err error
}

// TokenStore is the process-wide holder of the current bearer token and
// cached user profile. Reads go through an in-memory cache that is filled
// from the Backend once; writes update memory first and then the Backend.
// Writes are infrequent (login, logout, authorization failure) and
// idempotent per event, so last-writer-wins is sufficient.
type TokenStore struct {
	mu      sync.Mutex
	backend Backend
	logger  *slog.Logger

	token       string
	tokenLoaded bool

	profile       model.UserProfile
	profileSet    bool
	profileLoaded bool
}

// NewTokenStore creates a token store over the given backend.
func NewTokenStore(backend Backend, logger *slog.Logger) *TokenStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenStore{backend: backend, logger: logger}
}

// Token returns the current bearer token, or "" when logged out. The first
// read after startup falls through to the backend; a backend read failure is
// treated as "no token" and logged, never surfaced to the request path.
func (s *TokenStore) Token(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tokenLoaded {
		token, err := s.backend.ReadToken(ctx)
		switch {
		case err == nil:
			s.token = token
		case errors.Is(err, ErrNotFound):
			// logged out
		default:
			s.logger.WarnContext(ctx, "read token from backend failed", "error", err)
		}
		s.tokenLoaded = true
	}

	return s.token
}

// SetToken stores a new bearer token in memory and best-effort in the backend.
func (s *TokenStore) SetToken(ctx context.Context, token string) PersistResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.tokenLoaded = true

	if err := s.backend.WriteToken(ctx, token); err != nil {
		s.logger.WarnContext(ctx, "persist token failed", "error", err)
		return PersistResult{Err: err}
	}
	return PersistResult{Persisted: true}
}

// Profile returns the cached user profile and whether one is set.
func (s *TokenStore) Profile(ctx context.Context) (model.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.profileLoaded {
		profile, err := s.backend.ReadProfile(ctx)
		switch {
		case err == nil:
			s.profile = profile
			s.profileSet = true
		case errors.Is(err, ErrNotFound):
			// no profile
		default:
			s.logger.WarnContext(ctx, "read profile from backend failed", "error", err)
		}
		s.profileLoaded = true
	}

	return s.profile, s.profileSet
}

// SetProfile stores the user profile in memory and best-effort in the backend.
func (s *TokenStore) SetProfile(ctx context.Context, profile model.UserProfile) PersistResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = profile
	s.profileSet = true
	s.profileLoaded = true

	if err := s.backend.WriteProfile(ctx, profile); err != nil {
		s.logger.WarnContext(ctx, "persist profile failed", "error", err)
		return PersistResult{Err: err}
	}
	return PersistResult{Persisted: true}
}

// Clear drops the token and profile. Called on logout and whenever the
// upstream answers 401/403. Subsequent Token reads return "" without
// consulting the backend again.
func (s *TokenStore) Clear(ctx context.Context) PersistResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.tokenLoaded = true
	s.profile = model.UserProfile{}
	s.profileSet = false
	s.profileLoaded = true

	err := errors.Join(s.backend.DeleteToken(ctx), s.backend.DeleteProfile(ctx))
	if err != nil {
		s.logger.WarnContext(ctx, "clear session backend failed", "error", err)
		return PersistResult{Err: err}
	}
	return PersistResult{Persisted: true}
}
