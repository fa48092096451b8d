// Package cartsync maintains the local mirror of the server-authoritative
// cart. Mutations apply optimistically so the UI never waits on the network;
// the server round trip runs in the background and a failure rolls the
// mirror back to exactly the state that preceded the mutation.
package cartsync

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/shopwire/storefront-client/internal/shardqueue"
	"github.com/shopwire/storefront-client/internal/types"
)

// API is the server surface the engine mutates against.
type API interface {
	FetchCart(ctx context.Context) (*types.Cart, error)
	AddCartItem(ctx context.Context, productID int64, quantity int) (*types.AddCartItemResponse, error)
	RemoveCartItem(ctx context.Context, itemID int64) error
	UpdateCartItem(ctx context.Context, itemID int64, quantity int) error
}

// Executor runs mutation round trips FIFO per key.
type Executor interface {
	Submit(ctx context.Context, key string, job shardqueue.Job) error
}

// Engine is the single writer of the cart mirror. Confirmed lines are keyed
// by server line id; optimistic adds of a product the cart has never seen
// are keyed by product id until the server assigns the line id — fabricated
// client-local ids are never used.
//
// Each in-flight mutation holds a uuid token for its key. Completion applies
// its rollback or confirmation only while the token still matches, so a
// stale response that arrives after a reconcile cannot revert newer state.
type Engine struct {
	mu       sync.Mutex
	items    map[int64]types.CartItem // confirmed lines, by server id
	pending  map[int64]types.CartItem // optimistic new lines, by product id
	inflight map[string]string        // mutation key -> op token

	api  API
	exec Executor
}

// New constructs an empty mirror.
func New(api API, exec Executor) *Engine {
	return &Engine{
		items:    make(map[int64]types.CartItem),
		pending:  make(map[int64]types.CartItem),
		inflight: make(map[string]string),
		api:      api,
		exec:     exec,
	}
}

func itemKey(id int64) string    { return "item/" + strconv.FormatInt(id, 10) }
func productKey(id int64) string { return "product/" + strconv.FormatInt(id, 10) }

// Add optimistically inserts or increments the line for product and submits
// the server call. The returned key identifies the in-flight mutation.
func (e *Engine) Add(ctx context.Context, product types.Product, quantity int) (string, error) {
	if err := types.ValidateQuantity(quantity); err != nil {
		return "", err
	}
	if err := types.ValidateID(product.ID, "productId"); err != nil {
		return "", err
	}

	e.mu.Lock()
	existingID, exists := e.lineForProduct(product.ID)

	var key string
	var token string
	var undo func()
	var confirm func(*types.AddCartItemResponse)

	if exists {
		key = itemKey(existingID)
		if _, busy := e.inflight[key]; busy {
			e.mu.Unlock()
			return "", ErrMutationInFlight
		}
		token = uuid.NewString()
		e.inflight[key] = token

		prev := e.items[existingID]
		it := prev
		it.Quantity += quantity
		e.items[existingID] = it

		undo = func() {
			if _, ok := e.items[existingID]; ok {
				e.items[existingID] = prev
			}
		}
		confirm = func(resp *types.AddCartItemResponse) {
			if it, ok := e.items[existingID]; ok && resp.Item.ID == existingID {
				it.Quantity = resp.Item.Quantity
				e.items[existingID] = it
			}
		}
	} else {
		key = productKey(product.ID)
		if _, busy := e.inflight[key]; busy {
			e.mu.Unlock()
			return "", ErrMutationInFlight
		}
		token = uuid.NewString()
		e.inflight[key] = token

		e.pending[product.ID] = types.CartItem{Product: product, Quantity: quantity}

		undo = func() { delete(e.pending, product.ID) }
		confirm = func(resp *types.AddCartItemResponse) {
			delete(e.pending, product.ID)
			line := resp.Item
			if line.Product.ID == 0 {
				// Server add responses may omit the product
				// detail; keep the local reference.
				line.Product = product
			}
			if line.ID != 0 {
				e.items[line.ID] = line
			}
		}
	}
	e.mu.Unlock()

	job := shardqueue.JobFunc(func(jobCtx context.Context) error {
		resp, err := e.api.AddCartItem(jobCtx, product.ID, quantity)
		e.complete("add", key, token, err, func() {
			if err != nil {
				undo()
			} else {
				confirm(resp)
			}
		})
		return nil
	})
	if err := e.exec.Submit(ctx, key, job); err != nil {
		e.abort(key, token, undo)
		return "", err
	}
	mutationsTotal.WithLabelValues("add").Inc()
	return key, nil
}

// Remove optimistically deletes the line and submits the server call. The
// removed line is re-inserted verbatim if the server rejects the deletion.
func (e *Engine) Remove(ctx context.Context, itemID int64) (string, error) {
	e.mu.Lock()
	snapshot, ok := e.items[itemID]
	if !ok {
		e.mu.Unlock()
		return "", fmt.Errorf("remove item %d: %w", itemID, ErrItemNotFound)
	}
	key := itemKey(itemID)
	if _, busy := e.inflight[key]; busy {
		e.mu.Unlock()
		return "", ErrMutationInFlight
	}
	token := uuid.NewString()
	e.inflight[key] = token
	delete(e.items, itemID)
	e.mu.Unlock()

	job := shardqueue.JobFunc(func(jobCtx context.Context) error {
		err := e.api.RemoveCartItem(jobCtx, itemID)
		e.complete("remove", key, token, err, func() {
			if err != nil {
				e.items[itemID] = snapshot
			}
		})
		return nil
	})
	if err := e.exec.Submit(ctx, key, job); err != nil {
		e.abort(key, token, func() { e.items[itemID] = snapshot })
		return "", err
	}
	mutationsTotal.WithLabelValues("remove").Inc()
	return key, nil
}

// UpdateQuantity optimistically overwrites the line's quantity and submits
// the server call. Quantities below 1 are rejected without touching the
// mirror; removal is a distinct operation.
func (e *Engine) UpdateQuantity(ctx context.Context, itemID int64, quantity int) (string, error) {
	if err := types.ValidateQuantity(quantity); err != nil {
		return "", err
	}

	e.mu.Lock()
	it, ok := e.items[itemID]
	if !ok {
		e.mu.Unlock()
		return "", fmt.Errorf("update item %d: %w", itemID, ErrItemNotFound)
	}
	key := itemKey(itemID)
	if _, busy := e.inflight[key]; busy {
		e.mu.Unlock()
		return "", ErrMutationInFlight
	}
	token := uuid.NewString()
	e.inflight[key] = token
	prevQuantity := it.Quantity
	it.Quantity = quantity
	e.items[itemID] = it
	e.mu.Unlock()

	job := shardqueue.JobFunc(func(jobCtx context.Context) error {
		err := e.api.UpdateCartItem(jobCtx, itemID, quantity)
		e.complete("update", key, token, err, func() {
			if err != nil {
				if cur, ok := e.items[itemID]; ok {
					cur.Quantity = prevQuantity
					e.items[itemID] = cur
				}
			}
		})
		return nil
	})
	if err := e.exec.Submit(ctx, key, job); err != nil {
		e.abort(key, token, func() {
			if cur, ok := e.items[itemID]; ok {
				cur.Quantity = prevQuantity
				e.items[itemID] = cur
			}
		})
		return "", err
	}
	mutationsTotal.WithLabelValues("update").Inc()
	return key, nil
}

// Refresh fetches the authoritative cart and reconciles the mirror with it.
func (e *Engine) Refresh(ctx context.Context) error {
	cart, err := e.api.FetchCart(ctx)
	if err != nil {
		return err
	}
	e.ReconcileFromServer(*cart)
	return nil
}

// ReconcileFromServer wholesale-replaces the mirror with the server cart.
// This is the only operation that may change line ids. All in-flight markers
// are discarded: their completions find a mismatched token and do nothing.
func (e *Engine) ReconcileFromServer(cart types.Cart) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = make(map[int64]types.CartItem, len(cart.Items))
	for _, it := range cart.Items {
		e.items[it.ID] = it
	}
	e.pending = make(map[int64]types.CartItem)
	e.inflight = make(map[string]string)
	log.Debug().Int("lines", len(cart.Items)).Msg("cart mirror reconciled")
}

// Clear empties the mirror. Used after a confirmed order and on logout.
func (e *Engine) Clear() {
	e.ReconcileFromServer(types.Cart{})
}

// Snapshot returns an immutable copy of the mirror, confirmed and pending
// lines together.
func (e *Engine) Snapshot() types.Cart {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := types.Cart{Items: make([]types.CartItem, 0, len(e.items)+len(e.pending))}
	for _, it := range e.items {
		out.Items = append(out.Items, it)
	}
	for _, it := range e.pending {
		out.Items = append(out.Items, it)
	}
	return out
}

// ItemCount sums quantities across the mirror.
func (e *Engine) ItemCount() int {
	return e.Snapshot().ItemCount()
}

// Total sums unit price times quantity over lines with a resolvable price.
// Informational only; the server reprices at order time.
func (e *Engine) Total() float64 {
	var total float64
	for _, it := range e.Snapshot().Items {
		price, err := strconv.ParseFloat(it.Product.Price, 64)
		if err != nil {
			continue
		}
		total += price * float64(it.Quantity)
	}
	return total
}

// InFlight reports whether the line has a mutation awaiting confirmation.
// The UI uses this to disable conflicting controls.
func (e *Engine) InFlight(itemID int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.inflight[itemKey(itemID)]
	return ok
}

// InFlightKeys returns the keys of all outstanding mutations.
func (e *Engine) InFlightKeys() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	keys := make([]string, 0, len(e.inflight))
	for k := range e.inflight {
		keys = append(keys, k)
	}
	return keys
}

// complete resolves an in-flight mutation under the lock. A token mismatch
// means a reconcile superseded the operation; its outcome is dropped.
func (e *Engine) complete(op, key, token string, err error, apply func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.inflight[key] != token {
		log.Debug().Str("op", op).Str("key", key).Msg("stale cart mutation result dropped")
		return
	}
	delete(e.inflight, key)
	apply()
	if err != nil {
		rollbacksTotal.WithLabelValues(op).Inc()
		log.Warn().Err(err).Str("op", op).Str("key", key).Msg("cart mutation rolled back")
	}
}

// abort undoes an optimistic mutation whose job was never accepted.
func (e *Engine) abort(key, token string, undo func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inflight[key] != token {
		return
	}
	delete(e.inflight, key)
	undo()
}

// lineForProduct finds the confirmed line holding product, if any.
// Caller holds e.mu.
func (e *Engine) lineForProduct(productID int64) (int64, bool) {
	for id, it := range e.items {
		if it.Product.ID == productID {
			return id, true
		}
	}
	return 0, false
}
