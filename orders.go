package storefront

import (
	"context"

	"github.com/shopwire/storefront-client/internal/api"
	"github.com/shopwire/storefront-client/internal/types"
)

// PlaceOrder submits the current cart as a single order. The mirror is
// cleared if and only if the server confirms; on any failure it is left
// exactly as it was, so resubmission is safe and never drops items.
//
// An empty mirror fails fast with ErrCartEmpty before any network call.
func (c *Client) PlaceOrder(ctx context.Context, shippingAddress, paymentMethod string) (*Order, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	snapshot := c.cart.Snapshot()
	if len(snapshot.Items) == 0 {
		return nil, ErrCartEmpty
	}

	req := types.CreateOrderRequest{
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
		Items:           make([]types.CreateOrderItem, 0, len(snapshot.Items)),
	}
	for _, it := range snapshot.Items {
		req.Items = append(req.Items, types.CreateOrderItem{
			Product:  it.Product.ID,
			Quantity: it.Quantity,
		})
	}

	order, err := api.CreateOrder(ctx, c.http, c.baseURL, req)
	if err != nil {
		return nil, err
	}

	c.cart.Clear()
	return order, nil
}

// Orders retrieves the caller's order history.
func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	lr, err := api.ListOrders(ctx, c.http, c.baseURL)
	if err != nil {
		return nil, err
	}
	return lr.Orders, nil
}
