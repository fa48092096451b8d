// Package storefront is the client SDK for the multi-role shop backend. It
// owns the pieces an embedding UI must not reimplement: the session and its
// durable persistence, the authenticated request pipeline with silent
// credential refresh, the optimistic cart mirror, and the order commit flow.
package storefront

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/shopwire/storefront-client/internal/api"
	"github.com/shopwire/storefront-client/internal/cartsync"
	"github.com/shopwire/storefront-client/internal/pipeline"
	"github.com/shopwire/storefront-client/internal/session"
	"github.com/shopwire/storefront-client/internal/shardqueue"
	"github.com/shopwire/storefront-client/internal/storage"
)

// Client is the SDK entry point. All state mutation funnels through it:
// the session store is the only writer of credentials and the cart engine
// the only writer of the mirror.
type Client struct {
	baseURL string
	http    *http.Client // carries the authenticated pipeline transport
	plain   *http.Client // no credential handling; login and refresh calls
	exec    executor

	session *session.Store
	cart    *cartsync.Engine
	durable storage.Store

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client against baseURL (e.g. "https://shop.example/api").
// The session is hydrated from the durable store before New returns, so a
// previously logged-in device starts authenticated with no network call.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		plain:   &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	if c.durable == nil {
		c.durable = storage.NewMemoryStore()
	}
	if c.exec == nil {
		c.exec = newDefaultExecutor()
	}

	c.session = session.New(c.durable)
	c.session.Hydrate()

	// The pipeline wraps whatever transport the options installed, so
	// debug logging sits underneath the credential handling.
	c.http.Transport = &pipeline.Transport{
		Base:    c.http.Transport,
		Session: c.session,
		Refresh: func(ctx context.Context, refresh string) (string, error) {
			rr, err := api.RefreshToken(ctx, c.plain, c.baseURL, refresh)
			if err != nil {
				return "", err
			}
			return rr.Access, nil
		},
	}

	c.cart = cartsync.New(&serverCart{c}, c.exec)
	return c
}

// Close stops the background executor and releases the durable store. Safe
// to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	if c.durable != nil {
		return c.durable.Close()
	}
	return nil
}

// AwaitCartSync blocks until every currently in-flight cart mutation has
// completed, by running a barrier over each outstanding key. A key that
// resolves between observation and barrier just makes the barrier cheap.
func (c *Client) AwaitCartSync(ctx context.Context) error {
	for _, key := range c.cart.InFlightKeys() {
		if err := c.exec.Barrier(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// newDefaultExecutor builds the shard executor from SQ_* env tunables.
// MaxAttempts is pinned to one attempt: a failed cart mutation rolls the
// mirror back, it is never silently retried.
func newDefaultExecutor() *shardqueue.ShardExecutor {
	cfg, err := shardqueue.LoadConfig()
	if err != nil {
		cfg = shardqueue.Config{Shards: 4, QueueSize: 256}
	}
	cfg.MaxAttempts = 1
	return shardqueue.NewShardExecutor(cfg)
}

// serverCart adapts the API layer onto the engine's interface, binding in
// the authenticated client.
type serverCart struct{ c *Client }

func (s *serverCart) FetchCart(ctx context.Context) (*Cart, error) {
	return api.FetchCart(ctx, s.c.http, s.c.baseURL)
}

func (s *serverCart) AddCartItem(ctx context.Context, productID int64, quantity int) (*AddCartItemResponse, error) {
	return api.AddCartItem(ctx, s.c.http, s.c.baseURL, productID, quantity)
}

func (s *serverCart) RemoveCartItem(ctx context.Context, itemID int64) error {
	return api.RemoveCartItem(ctx, s.c.http, s.c.baseURL, itemID)
}

func (s *serverCart) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	return api.UpdateCartItem(ctx, s.c.http, s.c.baseURL, itemID, quantity)
}
