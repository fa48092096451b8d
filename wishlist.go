package storefront

import (
	"context"

	"github.com/shopwire/storefront-client/internal/api"
)

// Wishlist retrieves the saved products. Synchronous; the wishlist has no
// optimistic mirror.
func (c *Client) Wishlist(ctx context.Context) ([]WishlistItem, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	lr, err := api.ListWishlist(ctx, c.http, c.baseURL)
	if err != nil {
		return nil, err
	}
	return lr.Items, nil
}

// AddToWishlist saves a product.
func (c *Client) AddToWishlist(ctx context.Context, productID int64) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	return api.AddWishlistItem(ctx, c.http, c.baseURL, productID)
}

// RemoveFromWishlist removes a saved product.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID int64) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	return api.RemoveWishlistItem(ctx, c.http, c.baseURL, productID)
}
