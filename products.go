package storefront

import (
	"context"
	"time"

	"github.com/shopwire/storefront-client/internal/api"
	"github.com/shopwire/storefront-client/internal/debounce"
)

// SearchProducts queries the paginated catalog. No authentication needed;
// the credential rides along when one is held.
func (c *Client) SearchProducts(ctx context.Context, q ProductQuery) (*ProductPage, error) {
	return api.SearchProducts(ctx, c.http, c.baseURL, q)
}

// GetProduct retrieves a single product by slug.
func (c *Client) GetProduct(ctx context.Context, slug string) (*Product, error) {
	return api.GetProduct(ctx, c.http, c.baseURL, slug)
}

// DebouncedProductSearch returns a search entry point for search-as-you-type
// inputs. Bursts of calls within delay collapse into one catalog query using
// the last call's text; handle receives the result on a timer goroutine.
// stop cancels any pending query.
func (c *Client) DebouncedProductSearch(delay time.Duration, handle func(*ProductPage, error)) (search func(query string), stop func()) {
	d := debounce.New(delay, func(query string) {
		page, err := api.SearchProducts(context.Background(), c.http, c.baseURL, ProductQuery{Search: query})
		handle(page, err)
	})
	return d.Call, d.Stop
}
