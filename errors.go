package storefront

import (
	"errors"

	"github.com/shopwire/storefront-client/internal/cartsync"
	"github.com/shopwire/storefront-client/internal/shardqueue"
	"github.com/shopwire/storefront-client/internal/types"
)

// ErrUnauthenticated is returned by authenticated operations once the
// session is gone. They fail fast locally, without a network call, until a
// new login re-establishes the session.
var ErrUnauthenticated = errors.New("not authenticated")

// ErrCartEmpty is returned by PlaceOrder when the mirror holds no lines.
var ErrCartEmpty = errors.New("cart is empty")

// ErrBackPressure is returned when the client's internal shard queue is full.
var ErrBackPressure = errors.New("back-pressure (queue full)")

// Re-export shared SDK errors so callers compare against single symbols.
var (
	ErrNotFound         = types.ErrNotFound
	ErrInvalidQuantity  = types.ErrInvalidQuantity
	ErrItemNotFound     = cartsync.ErrItemNotFound
	ErrMutationInFlight = cartsync.ErrMutationInFlight
)

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// translateSubmitErr maps internal queue saturation onto the public symbol.
func translateSubmitErr(err error) error {
	if errors.Is(err, shardqueue.ErrQueueFull) {
		return ErrBackPressure
	}
	return err
}
