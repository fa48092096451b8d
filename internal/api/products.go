package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	apierr "github.com/shopwire/storefront-client/internal/errors"
	"github.com/shopwire/storefront-client/internal/types"
)

// SearchProducts queries the paginated catalog listing.
func SearchProducts(ctx context.Context, httpClient *http.Client, baseURL string, q types.ProductQuery) (*types.ProductPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Ordering != "" {
		params.Set("ordering", q.Ordering)
	}
	if q.Page > 1 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	endpoint := fmt.Sprintf("%s/products/", baseURL)
	if enc := params.Encode(); enc != "" {
		endpoint += "?" + enc
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetworkError("search products", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp, http.StatusOK, "search products"); err != nil {
		return nil, err
	}
	var page types.ProductPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetProduct retrieves a single product by slug.
func GetProduct(ctx context.Context, httpClient *http.Client, baseURL, slug string) (*types.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/products/%s/", baseURL, slug), nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetworkError("get product", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp, http.StatusOK, "get product"); err != nil {
		return nil, err
	}
	var p types.Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
