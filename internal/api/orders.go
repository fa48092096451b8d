package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apierr "github.com/shopwire/storefront-client/internal/errors"
	"github.com/shopwire/storefront-client/internal/types"
)

// CreateOrder submits a single order-creation request. Callers must treat
// any error as "the order did not happen" and leave their local cart alone.
func CreateOrder(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateOrderRequest) (*types.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := postJSON(ctx, fmt.Sprintf("%s/orders/create/", baseURL), req)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetworkError("create order", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp, http.StatusCreated, "create order"); err != nil {
		return nil, err
	}
	var order types.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders retrieves the caller's order history.
func ListOrders(ctx context.Context, httpClient *http.Client, baseURL string) (*types.ListOrdersResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/orders/", baseURL), nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetworkError("list orders", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp, http.StatusOK, "list orders"); err != nil {
		return nil, err
	}
	var lr types.ListOrdersResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, err
	}
	return &lr, nil
}
