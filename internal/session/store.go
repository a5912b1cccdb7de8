// Package session owns the bearer token lifecycle for the client: loading
// the persisted token at startup, deriving the identity from its claims,
// checking expiry, and exposing a readiness flag so callers never act on a
// half-initialized session.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/sweetshop/internal/common"
	"github.com/dmitrijs2005/sweetshop/internal/logging"
	"github.com/dmitrijs2005/sweetshop/internal/repositories/metadata"
)

// Identity is the read-only projection of the token claims. It is rebuilt
// whenever the token changes and is nil exactly when there is no valid,
// unexpired token.
type Identity struct {
	Subject   string
	IsAdmin   bool
	ExpiresAt time.Time
}

// State is a consistent snapshot of the session. IsAuthenticated is always
// derived, never stored.
type State struct {
	Identity        *Identity
	Token           string
	IsAuthenticated bool
	IsReady         bool
}

type tokenClaims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"is_admin"`
}

// Store manages the current token and derived identity, bridging the
// persisted metadata store and in-memory state.
//
// Contract:
//   - Initialize: run once at startup; resolves the persisted token fully
//     (decode + expiry) before readiness is reported true.
//   - Login: persist a token the backend just issued and derive identity.
//   - Logout: drop the token from storage and memory.
//   - State/Token: consistent snapshots; expiry detected on read forces a
//     logout so authentication state never outlives the token.
type Store struct {
	mu   sync.Mutex
	repo metadata.Repository
	log  logging.Logger

	// now is a test seam for expiry checks.
	now func() time.Time

	token    string
	identity *Identity
	ready    bool
}

func NewStore(repo metadata.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log, now: time.Now}
}

// decodeIdentity parses the claims without verifying the signature: the
// client holds no signing secret, and the backend re-verifies the token on
// every request anyway. A token with no exp claim is treated as expired.
func decodeIdentity(raw string, now time.Time) (*Identity, error) {
	claims := &tokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(now) {
		return nil, common.ErrTokenExpired
	}
	return &Identity{
		Subject:   claims.Subject,
		IsAdmin:   claims.IsAdmin,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Initialize loads the persisted token and resolves the session exactly
// once. Whatever the outcome (no token, invalid, expired, valid), readiness
// is reported true only after identity and token are in their final state.
// A second call is a no-op.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}

	raw, err := s.repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		// Unreadable storage is treated like an absent token; the user can
		// simply log in again.
		s.log.Warn(ctx, "failed to read persisted token", "error", err)
		s.ready = true
		return nil
	}

	if len(raw) == 0 {
		s.ready = true
		return nil
	}

	identity, err := decodeIdentity(string(raw), s.now())
	if err != nil {
		s.log.Info(ctx, "discarding persisted token", "reason", err)
		if delErr := s.repo.Delete(ctx, common.TokenStorageKey); delErr != nil {
			s.log.Warn(ctx, "failed to delete stale token", "error", delErr)
		}
		s.ready = true
		return nil
	}

	s.token = string(raw)
	s.identity = identity
	s.ready = true
	return nil
}

// Login accepts a token the caller already obtained from the backend,
// persists it, and derives the identity. A token that fails to decode or is
// already expired forces a logout instead.
func (s *Store) Login(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, err := decodeIdentity(token, s.now())
	if err != nil {
		s.logoutLocked(ctx)
		return err
	}

	if err := s.repo.Set(ctx, common.TokenStorageKey, []byte(token)); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}

	s.token = token
	s.identity = identity
	return nil
}

// Logout removes the token from storage and clears the in-memory session.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logoutLocked(ctx)
}

func (s *Store) logoutLocked(ctx context.Context) error {
	err := s.repo.Delete(ctx, common.TokenStorageKey)
	if err != nil {
		s.log.Warn(ctx, "failed to delete persisted token", "error", err)
	}
	s.token = ""
	s.identity = nil
	return err
}

// expireLocked drops the session if the token's expiry has passed since the
// last check. Expiry and decode failure behave identically: the session
// ends, no distinct error surfaces to the user.
func (s *Store) expireLocked() {
	if s.identity == nil {
		return
	}
	if s.identity.ExpiresAt.After(s.now()) {
		return
	}
	ctx := context.Background()
	s.log.Info(ctx, "token expired, logging out", "subject", s.identity.Subject)
	_ = s.logoutLocked(ctx)
}

// State returns a consistent snapshot of the session.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked()

	return State{
		Identity:        s.identity,
		Token:           s.token,
		IsAuthenticated: s.identity != nil,
		IsReady:         s.ready,
	}
}

// Token returns the current bearer token, or "" when logged out. Intended
// as the API client's token source.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked()
	return s.token
}
