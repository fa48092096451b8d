package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apierr "github.com/shopwire/storefront-client/internal/errors"
	"github.com/shopwire/storefront-client/internal/types"
)

func TestFetchCart_Success(t *testing.T) {
	t.Parallel()
	want := types.Cart{ID: 9, Items: []types.CartItem{{ID: 1, Quantity: 2}}, TotalPrice: "59.98"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/cart/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := FetchCart(context.Background(), srv.Client(), srv.URL)
	if err != nil || got == nil || got.ID != 9 || len(got.Items) != 1 {
		t.Fatalf("FetchCart unexpected: got=%+v err=%v", got, err)
	}
}

func TestAddCartItem_SuccessEnvelope(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cart/add/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req types.AddCartItemRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Product != 5 || req.Quantity != 2 {
			t.Errorf("payload = %+v", req)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(types.AddCartItemResponse{
			Item: types.CartItem{ID: 11, Product: types.Product{ID: 5}, Quantity: 2},
			Cart: types.Cart{ID: 1, Items: []types.CartItem{{ID: 11, Quantity: 2}}},
		})
	}))
	defer srv.Close()

	got, err := AddCartItem(context.Background(), srv.Client(), srv.URL, 5, 2)
	if err != nil {
		t.Fatalf("AddCartItem: %v", err)
	}
	if got.Item.ID != 11 || got.Cart.ItemCount() != 2 {
		t.Fatalf("unexpected envelope: %+v", got)
	}
}

func TestAddCartItem_ValidationFailureClassified(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Not enough stock"}`))
	}))
	defer srv.Close()

	_, err := AddCartItem(context.Background(), srv.Client(), srv.URL, 5, 99)
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *apierr.ClassifiedError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ClassifiedError, got %T", err)
	}
	if ce.StatusCode != http.StatusBadRequest || ce.Category != apierr.Irrecoverable {
		t.Fatalf("classification: %+v", ce)
	}
	if !strings.Contains(ce.Body, "Not enough stock") {
		t.Fatalf("server detail lost: %q", ce.Body)
	}
}

func TestRemoveCartItem_Paths(t *testing.T) {
	t.Parallel()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := RemoveCartItem(context.Background(), srv.Client(), srv.URL, 42); err != nil {
		t.Fatalf("RemoveCartItem: %v", err)
	}
	if gotPath != "/cart/remove/42/" {
		t.Fatalf("path = %q", gotPath)
	}
}

func TestUpdateCartItem_NotFound(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	err := UpdateCartItem(context.Background(), srv.Client(), srv.URL, 42, 3)
	if err == nil {
		t.Fatal("expected error")
	}
	if apierr.StatusCode(err) != http.StatusNotFound {
		t.Fatalf("status = %d", apierr.StatusCode(err))
	}
}
