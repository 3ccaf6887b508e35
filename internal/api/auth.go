package api

import (
	"context"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/transport"
)

// Auth adapts the authentication and profile endpoints.
type Auth struct {
	c *transport.Client
}

// NewAuth constructs the auth adapter.
func NewAuth(c *transport.Client) *Auth {
	return &Auth{c: c}
}

// Login exchanges credentials for a token pair.
func (a *Auth) Login(ctx context.Context, creds model.Credentials) (model.TokenPair, error) {
	var out model.TokenPair
	err := a.c.Post(ctx, "/api/auth/token/", creds, &out)
	return out, err
}

// Refresh exchanges a refresh token for a new access token. The server may
// rotate the refresh token; the returned pair reflects whatever it sent.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	var out model.TokenPair
	err := a.c.Post(ctx, "/api/auth/token/refresh/", map[string]string{"refresh": refreshToken}, &out)
	return out, err
}

// Register creates a new account.
func (a *Auth) Register(ctx context.Context, data model.Registration) (model.User, error) {
	var out model.User
	err := a.c.Post(ctx, "/api/users/register/", data, &out)
	return out, err
}

// Profile fetches the authenticated user's profile.
func (a *Auth) Profile(ctx context.Context) (model.User, error) {
	var out model.User
	err := a.c.Get(ctx, "/api/users/profile/", nil, &out)
	return out, err
}

// UpdateProfile patches the authenticated user's profile.
func (a *Auth) UpdateProfile(ctx context.Context, data any) (model.User, error) {
	var out model.User
	err := a.c.Patch(ctx, "/api/users/profile/", data, &out)
	return out, err
}
