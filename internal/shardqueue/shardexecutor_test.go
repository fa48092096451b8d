package shardqueue

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	clienterrors "github.com/shopwire/storefront-client/internal/errors"
)

func TestSubmit_FIFOPerKey(t *testing.T) {
	ex := NewShardExecutor(Config{Shards: 2, QueueSize: 16, MaxAttempts: 1})
	defer ex.Stop()

	var order []int
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		i := i
		j := JobFunc(func(context.Context) error {
			order = append(order, i) // single shard worker, no race
			if i == 4 {
				close(done)
			}
			return nil
		})
		if err := ex.Submit(context.Background(), "same-key", j); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for jobs")
	}
	for i, got := range order {
		if got != i {
			t.Fatalf("order[%d] = %d, want %d", i, got, i)
		}
	}
}

func TestSubmit_AfterStop(t *testing.T) {
	ex := NewShardExecutor(Config{Shards: 1, QueueSize: 1})
	ex.Stop()
	err := ex.Submit(context.Background(), "k", JobFunc(func(context.Context) error { return nil }))
	if err != ErrExecutorClosed {
		t.Fatalf("expected ErrExecutorClosed, got %v", err)
	}
}

func TestErrorHandler_IrrecoverableFailsFast(t *testing.T) {
	var handled int32
	var runs int32
	cfg := Config{Shards: 1, QueueSize: 8, MaxAttempts: 5, BaseBackoff: time.Millisecond}
	cfg.ErrorHandler = func(err error) { atomic.AddInt32(&handled, 1) }

	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	bad := clienterrors.NewHTTPError(400, "", "add cart item")
	if err := ex.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		atomic.AddInt32(&runs, 1)
		return bad
	})); err != nil {
		t.Fatalf("submit: %v", err)
	}

	done := make(chan struct{})
	_ = ex.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		close(done)
		return nil
	}))
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout draining shard")
	}

	if got := atomic.LoadInt32(&runs); got != 1 {
		t.Fatalf("irrecoverable job ran %d times, want 1", got)
	}
	if got := atomic.LoadInt32(&handled); got != 1 {
		t.Fatalf("error handler called %d times, want 1", got)
	}
}

func TestRetry_RecoverableUntilSuccess(t *testing.T) {
	var runs int32
	cfg := Config{Shards: 1, QueueSize: 4, MaxAttempts: 4, BaseBackoff: time.Millisecond, MaxInterval: 5 * time.Millisecond}

	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	done := make(chan struct{})
	if err := ex.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		if atomic.AddInt32(&runs, 1) < 3 {
			return clienterrors.NewNetworkError("fetch cart", context.DeadlineExceeded)
		}
		close(done)
		return nil
	})); err != nil {
		t.Fatalf("submit: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for retries")
	}
	if got := atomic.LoadInt32(&runs); got != 3 {
		t.Fatalf("job ran %d times, want 3", got)
	}
}

func TestErrorHandler_PanicRecovered(t *testing.T) {
	cfg := Config{Shards: 1, QueueSize: 8, MaxAttempts: 1}
	cfg.ErrorHandler = func(err error) { panic("handler panic") }

	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	if err := ex.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		return clienterrors.NewHTTPError(404, "", "remove cart item")
	})); err != nil {
		t.Fatalf("submit: %v", err)
	}

	ran := make(chan struct{})
	_ = ex.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		close(ran)
		return nil
	}))
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("worker did not survive handler panic")
	}
}

func TestBarrier_WaitsForEarlierJobs(t *testing.T) {
	ex := NewShardExecutor(Config{Shards: 1, QueueSize: 8, MaxAttempts: 1})
	defer ex.Stop()

	var ran int32
	if err := ex.Submit(context.Background(), "item/7", JobFunc(func(context.Context) error {
		time.Sleep(30 * time.Millisecond)
		atomic.StoreInt32(&ran, 1)
		return nil
	})); err != nil {
		t.Fatalf("submit: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := ex.Barrier(ctx, "item/7"); err != nil {
		t.Fatalf("barrier: %v", err)
	}
	if atomic.LoadInt32(&ran) == 0 {
		t.Fatal("barrier returned before earlier job executed")
	}
}

func TestSubmit_QueueFull(t *testing.T) {
	cfg := Config{Shards: 1, QueueSize: 1, EnqueueTimeout: 10 * time.Millisecond, MaxAttempts: 1}
	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	block := make(chan struct{})
	defer close(block)

	started := make(chan struct{})
	_ = ex.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		close(started)
		<-block
		return nil
	}))
	<-started

	// Fill the single queue slot, then the next submit must time out.
	_ = ex.Submit(context.Background(), "k", JobFunc(func(context.Context) error { return nil }))
	err := ex.Submit(context.Background(), "k", JobFunc(func(context.Context) error { return nil }))
	if err == nil {
		t.Fatal("expected queue-full error")
	}
	qf, ok := err.(*QueueFullError)
	if !ok {
		t.Fatalf("expected *QueueFullError, got %T: %v", err, err)
	}
	if qf.Capacity != 1 {
		t.Fatalf("unexpected capacity %d", qf.Capacity)
	}
}
