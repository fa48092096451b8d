package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apierr "github.com/shopwire/storefront-client/internal/errors"
	"github.com/shopwire/storefront-client/internal/types"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req types.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "ada" || req.Password != "hunter2" {
			t.Errorf("payload = %+v", req)
		}
		_ = json.NewEncoder(w).Encode(types.LoginResponse{
			User:    types.User{ID: 1, Username: "ada", Role: types.RoleCustomer},
			Access:  "acc-1",
			Refresh: "ref-1",
		})
	}))
	defer srv.Close()

	got, err := Login(context.Background(), srv.Client(), srv.URL, types.LoginRequest{Username: "ada", Password: "hunter2"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.User.ID != 1 || got.Access != "acc-1" || got.Refresh != "ref-1" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestLogin_BadCredentialsSurfaced(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := Login(context.Background(), srv.Client(), srv.URL, types.LoginRequest{Username: "ada", Password: "wrong"})
	if err == nil {
		t.Fatal("expected error")
	}
	if apierr.StatusCode(err) != http.StatusUnauthorized {
		t.Fatalf("status = %d", apierr.StatusCode(err))
	}
}

func TestRefreshToken_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/token/refresh/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req types.RefreshRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Refresh != "ref-1" {
			t.Errorf("refresh = %q", req.Refresh)
		}
		_ = json.NewEncoder(w).Encode(types.RefreshResponse{Access: "acc-2"})
	}))
	defer srv.Close()

	got, err := RefreshToken(context.Background(), srv.Client(), srv.URL, "ref-1")
	if err != nil || got.Access != "acc-2" {
		t.Fatalf("RefreshToken: got=%+v err=%v", got, err)
	}
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(types.User{ID: 2, Username: "vee", Role: types.RoleVendor})
	}))
	defer srv.Close()

	got, err := Register(context.Background(), srv.Client(), srv.URL, types.RegisterRequest{Username: "vee", Role: types.RoleVendor})
	if err != nil || got.Role != types.RoleVendor {
		t.Fatalf("Register: got=%+v err=%v", got, err)
	}
}
