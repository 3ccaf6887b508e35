// Package auth holds the client session: tokens, the authenticated user,
// and the login/register/logout operations that maintain them.
package auth

import (
	"context"
	"sync"

	"github.com/fittrack/fittrack-cli/internal/model"
)

// API is the slice of the endpoint surface the session depends on.
// *api.Auth satisfies it.
type API interface {
	Login(ctx context.Context, creds model.Credentials) (model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	Register(ctx context.Context, data model.Registration) (model.User, error)
	Profile(ctx context.Context) (model.User, error)
	UpdateProfile(ctx context.Context, data any) (model.User, error)
}

// Store is the process-wide session state. Tokens are written only here;
// the transport reads them through AccessToken.
type Store struct {
	api   API
	creds CredentialStore

	mu      sync.Mutex
	access  string
	refresh string
	user    *model.User
}

// New constructs a Store, resuming any persisted session. A missing or
// unreadable credential file just starts unauthenticated.
func New(api API, creds CredentialStore) *Store {
	s := &Store{api: api, creds: creds}
	if pair, err := creds.Load(); err == nil {
		s.access, s.refresh = pair.Access, pair.Refresh
	}
	return s
}

// AccessToken returns the current access token ("" when logged out).
// Implements transport.TokenProvider.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access
}

// RefreshToken returns the current refresh token.
func (s *Store) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}

// IsAuthenticated reports whether an access token is present. Token
// validity is never checked client-side.
func (s *Store) IsAuthenticated() bool {
	return s.AccessToken() != ""
}

// User returns the fetched profile, if any.
func (s *Store) User() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

func (s *Store) setTokens(pair model.TokenPair) {
	s.mu.Lock()
	s.access = pair.Access
	if pair.Refresh != "" {
		s.refresh = pair.Refresh
	}
	s.mu.Unlock()
}

func (s *Store) persist() error {
	s.mu.Lock()
	pair := model.TokenPair{Access: s.access, Refresh: s.refresh}
	s.mu.Unlock()
	return s.creds.Save(pair)
}

// Login exchanges credentials for tokens, persists them, then fetches the
// profile. Tokens are committed before the profile fetch, so a profile
// failure propagates but leaves the session logged in.
func (s *Store) Login(ctx context.Context, creds model.Credentials) (model.TokenPair, error) {
	pair, err := s.api.Login(ctx, creds)
	if err != nil {
		return model.TokenPair{}, err
	}
	s.setTokens(pair)
	if err := s.persist(); err != nil {
		return model.TokenPair{}, err
	}
	if _, err := s.FetchProfile(ctx); err != nil {
		return model.TokenPair{}, err
	}
	return pair, nil
}

// Register creates the account, then logs in with the same credentials.
// A registration success followed by a login failure surfaces the login
// failure.
func (s *Store) Register(ctx context.Context, data model.Registration) error {
	if _, err := s.api.Register(ctx, data); err != nil {
		return err
	}
	_, err := s.Login(ctx, model.Credentials{
		Username: data.Username,
		Password: data.Password,
	})
	return err
}

// FetchProfile loads the authenticated user into the session.
func (s *Store) FetchProfile(ctx context.Context) (model.User, error) {
	u, err := s.api.Profile(ctx)
	if err != nil {
		return model.User{}, err
	}
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	return u, nil
}

// UpdateProfile patches the profile and mirrors the result into the session.
func (s *Store) UpdateProfile(ctx context.Context, data any) (model.User, error) {
	u, err := s.api.UpdateProfile(ctx, data)
	if err != nil {
		return model.User{}, err
	}
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	return u, nil
}

// Refresh exchanges the stored refresh token for a new access token and
// persists the result. Driven explicitly; nothing calls it automatically.
func (s *Store) Refresh(ctx context.Context) error {
	pair, err := s.api.Refresh(ctx, s.RefreshToken())
	if err != nil {
		return err
	}
	s.setTokens(pair)
	return s.persist()
}

// Logout clears the session locally: in-memory tokens, the fetched user,
// and the persisted pair. No network call is made.
func (s *Store) Logout() {
	s.mu.Lock()
	s.access = ""
	s.refresh = ""
	s.user = nil
	s.mu.Unlock()
	_ = s.creds.Clear()
}
