package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apierr "github.com/shopwire/storefront-client/internal/errors"
	"github.com/shopwire/storefront-client/internal/types"
)

// Login exchanges credentials for a user record and token pair. It is sent
// on a plain client: there is no session to attach yet.
func Login(ctx context.Context, httpClient *http.Client, baseURL string, req types.LoginRequest) (*types.LoginResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := postJSON(ctx, fmt.Sprintf("%s/auth/login/", baseURL), req)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetworkError("login", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp, http.StatusOK, "login"); err != nil {
		return nil, err
	}
	var lr types.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, err
	}
	return &lr, nil
}

// Register creates a new account. The server decides the role from the
// request payload (vendor registrations carry role and business name).
func Register(ctx context.Context, httpClient *http.Client, baseURL string, req types.RegisterRequest) (*types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := postJSON(ctx, fmt.Sprintf("%s/auth/register/", baseURL), req)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetworkError("register", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp, http.StatusCreated, "register"); err != nil {
		return nil, err
	}
	var u types.User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// RefreshToken mints a new access credential from the refresh credential.
// Always sent on a plain client; routing it through the authenticated
// pipeline would recurse on 401.
func RefreshToken(ctx context.Context, httpClient *http.Client, baseURL, refresh string) (*types.RefreshResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := postJSON(ctx, fmt.Sprintf("%s/auth/token/refresh/", baseURL), types.RefreshRequest{Refresh: refresh})
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetworkError("refresh token", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp, http.StatusOK, "refresh token"); err != nil {
		return nil, err
	}
	var rr types.RefreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return nil, err
	}
	return &rr, nil
}

// Profile fetches the authenticated user's record.
func Profile(ctx context.Context, httpClient *http.Client, baseURL string) (*types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/auth/profile/", baseURL), nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetworkError("fetch profile", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp, http.StatusOK, "fetch profile"); err != nil {
		return nil, err
	}
	var u types.User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}
