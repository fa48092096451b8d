package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apierr "github.com/shopwire/storefront-client/internal/errors"
	"github.com/shopwire/storefront-client/internal/types"
)

// ListWishlist retrieves the saved products.
func ListWishlist(ctx context.Context, httpClient *http.Client, baseURL string) (*types.ListWishlistResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/wishlist/", baseURL), nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetworkError("list wishlist", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp, http.StatusOK, "list wishlist"); err != nil {
		return nil, err
	}
	var lr types.ListWishlistResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, err
	}
	return &lr, nil
}

// AddWishlistItem saves a product to the wishlist.
func AddWishlistItem(ctx context.Context, httpClient *http.Client, baseURL string, productID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	httpReq, err := postJSON(ctx, fmt.Sprintf("%s/wishlist/add/", baseURL), types.AddWishlistRequest{Product: productID})
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return apierr.NewNetworkError("add wishlist item", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return checkStatus(resp, http.StatusCreated, "add wishlist item")
}

// RemoveWishlistItem removes a product from the wishlist.
func RemoveWishlistItem(ctx context.Context, httpClient *http.Client, baseURL string, productID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	httpReq, err := postJSON(ctx, fmt.Sprintf("%s/wishlist/remove/%d/", baseURL, productID), struct{}{})
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return apierr.NewNetworkError("remove wishlist item", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return checkStatus(resp, http.StatusOK, "remove wishlist item")
}
