package session

import (
	"errors"
	"testing"

	"github.com/shopwire/storefront-client/internal/storage"
	"github.com/shopwire/storefront-client/internal/types"
)

func TestLoginLogoutLifecycle(t *testing.T) {
	t.Parallel()
	st := New(storage.NewMemoryStore())

	if st.IsAuthenticated() {
		t.Fatal("fresh store should be unauthenticated")
	}

	u := types.User{ID: 7, Username: "ada", Role: types.RoleCustomer}
	if err := st.LoginSuccess(u, "acc-1", "ref-1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !st.IsAuthenticated() || st.AccessToken() != "acc-1" || st.RefreshToken() != "ref-1" {
		t.Fatalf("unexpected state after login: %q %q", st.AccessToken(), st.RefreshToken())
	}
	if got := st.User(); got == nil || got.ID != 7 {
		t.Fatalf("unexpected user: %+v", got)
	}

	st.Logout()
	if st.IsAuthenticated() || st.AccessToken() != "" || st.RefreshToken() != "" || st.User() != nil {
		t.Fatal("state not cleared by logout")
	}
	// Second logout is a no-op, not an error.
	st.Logout()
}

func TestRefreshAccess_LeavesRestUntouched(t *testing.T) {
	t.Parallel()
	st := New(storage.NewMemoryStore())
	u := types.User{ID: 1, Username: "ada"}
	if err := st.LoginSuccess(u, "acc-1", "ref-1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := st.RefreshAccess("acc-2"); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if st.AccessToken() != "acc-2" {
		t.Fatalf("access = %q, want acc-2", st.AccessToken())
	}
	if st.RefreshToken() != "ref-1" {
		t.Fatalf("refresh credential changed: %q", st.RefreshToken())
	}
	if got := st.User(); got == nil || got.ID != 1 {
		t.Fatalf("user changed: %+v", got)
	}
}

func TestHydrate_FromDurableStore(t *testing.T) {
	t.Parallel()
	durable := storage.NewMemoryStore()
	_ = durable.Set("userInfo", `{"id":3,"username":"vee","role":"vendor"}`)
	_ = durable.Set("accessToken", "acc-x")
	_ = durable.Set("refreshToken", "ref-x")

	st := New(durable)
	st.Hydrate()

	if !st.IsAuthenticated() || st.AccessToken() != "acc-x" || st.RefreshToken() != "ref-x" {
		t.Fatal("hydrate did not restore credentials")
	}
	if got := st.User(); got == nil || got.Role != types.RoleVendor {
		t.Fatalf("hydrated user: %+v", got)
	}
}

func TestHydrate_CorruptUserRecord(t *testing.T) {
	t.Parallel()
	durable := storage.NewMemoryStore()
	_ = durable.Set("userInfo", `{not json`)

	st := New(durable)
	st.Hydrate()

	if st.User() != nil {
		t.Fatal("corrupt record should yield nil user")
	}
	if st.IsAuthenticated() {
		t.Fatal("no access credential, should be unauthenticated")
	}
}

type failingStore struct{ storage.Store }

func (f failingStore) Set(key, value string) error { return errors.New("disk full") }

func TestLoginSuccess_DurableWriteFailure(t *testing.T) {
	t.Parallel()
	st := New(failingStore{storage.NewMemoryStore()})
	err := st.LoginSuccess(types.User{ID: 1}, "acc", "ref")
	if err == nil {
		t.Fatal("expected error from durable write")
	}
	// No partially-updated state is observable.
	if st.IsAuthenticated() || st.User() != nil {
		t.Fatal("failed login must not mutate session")
	}
}
