package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apierr "github.com/shopwire/storefront-client/internal/errors"
	"github.com/shopwire/storefront-client/internal/types"
)

// FetchCart retrieves the server's authoritative cart.
func FetchCart(ctx context.Context, httpClient *http.Client, baseURL string) (*types.Cart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/cart/", baseURL), nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetworkError("fetch cart", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp, http.StatusOK, "fetch cart"); err != nil {
		return nil, err
	}
	var cart types.Cart
	if err := json.NewDecoder(resp.Body).Decode(&cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddCartItem adds (or increments) a product on the server cart. The
// success shape carries both the affected line and the updated aggregate.
func AddCartItem(ctx context.Context, httpClient *http.Client, baseURL string, productID int64, quantity int) (*types.AddCartItemResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := postJSON(ctx, fmt.Sprintf("%s/cart/add/", baseURL), types.AddCartItemRequest{Product: productID, Quantity: quantity})
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetworkError("add cart item", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp, http.StatusCreated, "add cart item"); err != nil {
		return nil, err
	}
	var ar types.AddCartItemResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return nil, err
	}
	return &ar, nil
}

// RemoveCartItem deletes a cart line by its server id.
func RemoveCartItem(ctx context.Context, httpClient *http.Client, baseURL string, itemID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	httpReq, err := postJSON(ctx, fmt.Sprintf("%s/cart/remove/%d/", baseURL, itemID), struct{}{})
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return apierr.NewNetworkError("remove cart item", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return checkStatus(resp, http.StatusOK, "remove cart item")
}

// UpdateCartItem overwrites a cart line's quantity.
func UpdateCartItem(ctx context.Context, httpClient *http.Client, baseURL string, itemID int64, quantity int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	httpReq, err := postJSON(ctx, fmt.Sprintf("%s/cart/update/%d/", baseURL, itemID), types.UpdateCartItemRequest{Quantity: quantity})
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return apierr.NewNetworkError("update cart item", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return checkStatus(resp, http.StatusOK, "update cart item")
}
