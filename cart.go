package storefront

import "context"

// Cart operations apply to the local mirror immediately and confirm with
// the server in the background; a server rejection quietly reverts the
// mirror. Conflicting mutations on a line that is already in flight return
// ErrMutationInFlight rather than queueing.

// AddToCart inserts or increments the line for product. Requires
// quantity >= 1.
func (c *Client) AddToCart(ctx context.Context, product Product, quantity int) (*EnqueueAck, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	key, err := c.cart.Add(ctx, product, quantity)
	if err != nil {
		return nil, translateSubmitErr(err)
	}
	return &EnqueueAck{Key: key, Status: "enqueued"}, nil
}

// RemoveFromCart deletes the line. Decrementing to zero is not a thing;
// this is the one way a line leaves the cart.
func (c *Client) RemoveFromCart(ctx context.Context, itemID int64) (*EnqueueAck, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	key, err := c.cart.Remove(ctx, itemID)
	if err != nil {
		return nil, translateSubmitErr(err)
	}
	return &EnqueueAck{Key: key, Status: "enqueued"}, nil
}

// UpdateCartQuantity overwrites the line's quantity. Requires
// quantity >= 1; use RemoveFromCart for removal.
func (c *Client) UpdateCartQuantity(ctx context.Context, itemID int64, quantity int) (*EnqueueAck, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	key, err := c.cart.UpdateQuantity(ctx, itemID, quantity)
	if err != nil {
		return nil, translateSubmitErr(err)
	}
	return &EnqueueAck{Key: key, Status: "enqueued"}, nil
}

// RefreshCart fetches the server's authoritative cart and reconciles the
// mirror with it, discarding any in-flight optimistic state.
func (c *Client) RefreshCart(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	return c.cart.Refresh(ctx)
}

// CartSnapshot returns an immutable copy of the mirror.
func (c *Client) CartSnapshot() Cart { return c.cart.Snapshot() }

// CartItemCount sums quantities across the mirror.
func (c *Client) CartItemCount() int { return c.cart.ItemCount() }

// CartTotal sums unit price times quantity over lines with a resolvable
// price. Informational; the server reprices at order time.
func (c *Client) CartTotal() float64 { return c.cart.Total() }

// CartItemInFlight reports whether the line has a mutation awaiting
// confirmation; the UI disables that line's controls while true.
func (c *Client) CartItemInFlight(itemID int64) bool { return c.cart.InFlight(itemID) }
