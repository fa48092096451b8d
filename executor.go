package storefront

import (
	"context"

	"github.com/shopwire/storefront-client/internal/shardqueue"
)

// executor abstracts the internal async job runner used by the cart engine.
type executor interface {
	Submit(context.Context, string, shardqueue.Job) error
	Barrier(context.Context, string) error
	Stop()
}
