package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/aussiebroadwan/journal/internal/journal/domain"
	"github.com/aussiebroadwan/journal/pkg/slogx"
)

// DefaultTimeout bounds a single repository operation, lock wait included.
const DefaultTimeout = 5 * time.Second

// Repository owns the account snapshot. Every operation runs as one
// critical section under a single process-wide lock: the snapshot is loaded
// fresh, handed to the caller, and (for Update) validated and saved before
// the lock is released.
type Repository struct {
	store   Store
	lock    *semaphore.Weighted
	timeout time.Duration
}

// NewRepository wraps s. A non-positive timeout selects DefaultTimeout.
func NewRepository(s Store, timeout time.Duration) *Repository {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Repository{
		store:   s,
		lock:    semaphore.NewWeighted(1),
		timeout: timeout,
	}
}

// View loads the snapshot and passes it to fn. Changes fn makes are discarded.
func (r *Repository) View(ctx context.Context, fn func(domain.Accounts) error) error {
	return r.run(ctx, false, fn)
}

// Update loads the snapshot, lets fn mutate it, then saves the result. If fn
// returns an error nothing is written.
func (r *Repository) Update(ctx context.Context, fn func(domain.Accounts) error) error {
	return r.run(ctx, true, fn)
}

// Ping checks the underlying store.
func (r *Repository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.store.Ping(ctx); err != nil {
		return unavailable(err)
	}
	return nil
}

// Close closes the underlying store.
func (r *Repository) Close() error {
	return r.store.Close()
}

func (r *Repository) run(ctx context.Context, write bool, fn func(domain.Accounts) error) error {
	// Operations run to completion once started; only the timeout stops them.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	if err := r.lock.Acquire(ctx, 1); err != nil {
		slogx.FromContext(ctx).Warn("store lock wait timed out", slog.Duration("timeout", r.timeout))
		return fmt.Errorf("%w: waiting for lock: %v", ErrStorageUnavailable, err)
	}

	var st state
	done := make(chan error, 1)
	go func() {
		defer r.lock.Release(1)
		defer func() {
			if p := recover(); p != nil {
				slogx.FromContext(ctx).Error("store critical section panicked", slog.Any("panic", p))
				done <- fmt.Errorf("store: critical section panicked: %v", p)
			}
		}()
		done <- r.critical(ctx, write, fn, &st)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		if !st.CompareAndSwap(stateRunning, stateAbandoned) {
			// The save has started; its outcome is the caller's outcome.
			return <-done
		}
		// The critical section keeps the lock until its I/O returns, so a
		// late load still cannot interleave with another writer.
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, ctx.Err())
	}
}

// state tracks whether an abandoned critical section may still save.
type state = atomic.Int32

const (
	stateRunning int32 = iota
	stateSaving
	stateAbandoned
)

func (r *Repository) critical(ctx context.Context, write bool, fn func(domain.Accounts) error, st *state) error {
	accounts, err := r.store.Load(ctx)
	if err != nil {
		return unavailable(err)
	}
	if accounts == nil {
		accounts = domain.Accounts{}
	}

	if err := fn(accounts); err != nil {
		return err
	}
	if !write {
		return nil
	}

	if err := accounts.Validate(); err != nil {
		return fmt.Errorf("store: refusing to save invalid snapshot: %w", err)
	}
	if !st.CompareAndSwap(stateRunning, stateSaving) {
		return fmt.Errorf("%w: timed out before save", ErrStorageUnavailable)
	}
	// A started save gets its own deadline so the caller's expiry cannot
	// leave the outcome unknown.
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()
	if err := r.store.Save(saveCtx, accounts); err != nil {
		return unavailable(err)
	}

	slogx.FromContext(ctx).Debug("store snapshot saved", slog.Int("accounts", len(accounts)))
	return nil
}

func unavailable(err error) error {
	if errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
