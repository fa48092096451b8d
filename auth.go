package storefront

import (
	"context"

	"github.com/shopwire/storefront-client/internal/api"
	"github.com/shopwire/storefront-client/internal/types"
)

// Login authenticates with the server and establishes the session,
// persisting it durably. The cart mirror is not touched; call RefreshCart
// afterwards to hydrate it from the server.
func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	lr, err := api.Login(ctx, c.plain, c.baseURL, types.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	if err := c.session.LoginSuccess(lr.User, lr.Access, lr.Refresh); err != nil {
		return nil, err
	}
	return &lr.User, nil
}

// Register creates a new account. It does not log the account in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	return api.Register(ctx, c.plain, c.baseURL, req)
}

// Logout destroys the session and empties the cart mirror. Idempotent.
func (c *Client) Logout() {
	c.session.Logout()
	c.cart.Clear()
}

// IsAuthenticated reports whether an access credential is held.
func (c *Client) IsAuthenticated() bool { return c.session.IsAuthenticated() }

// CurrentUser returns the identity from the session, or nil when logged out.
// No network call; use Profile for the server's current record.
func (c *Client) CurrentUser() *User { return c.session.User() }

// Profile fetches the authenticated user's record from the server.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	return api.Profile(ctx, c.http, c.baseURL)
}

// requireAuth is the local circuit breaker: once the session is destroyed,
// authenticated operations fail here without reaching for the network.
func (c *Client) requireAuth() error {
	if !c.session.IsAuthenticated() {
		return ErrUnauthenticated
	}
	return nil
}
