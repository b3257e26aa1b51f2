// Package optimistic provides speculative mutation of an in-memory
// collection with rollback on failed confirmation. A transform is applied
// and published immediately; an asynchronous confirmation (typically the
// persistence call) then either commits the speculative state or restores
// the pre-mutation snapshot.
//
// Known limitation, kept deliberately: rollback restores the entire
// pre-mutation snapshot rather than reconciling per entity. If two
// mutations overlap and the second succeeds while the first later fails,
// rolling back the first also discards the second's effect. Concurrent
// mutation ordering is last-snapshot-wins.
package optimistic

import (
	"context"
	"log/slog"
	"sync"

	"procure-chef/internal/pkg/errs"

	"github.com/google/uuid"
)

type state int

const (
	stateOptimistic state = iota
	stateCommitted
	stateRolledBack
)

// Transform computes the next collection state from the current one. The
// coordinator hands it a private copy, so mutating the argument in place
// and returning it is fine.
type Transform[K comparable, V any] func(map[K]V) map[K]V

// ConfirmFunc is the asynchronous confirmation of a mutation. Once
// started it runs to completion or failure; there is no cancellation.
type ConfirmFunc func(context.Context) error

// Pending is the deferred result of one mutation. It is discarded by the
// coordinator once confirmation commits or rolls back.
type Pending[K comparable, V any] struct {
	id       uuid.UUID
	done     chan struct{}
	mu       sync.Mutex
	state    state
	snapshot map[K]V // collection as of the terminal transition
	err      error
}

// Wait blocks until the mutation reaches a terminal state and returns the
// collection visible at that point: the optimistic state on commit, the
// restored pre-mutation snapshot on rollback (with the surfaced error).
func (p *Pending[K, V]) Wait(ctx context.Context) (map[K]V, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.done:
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot, p.err
}

// Done is closed when the mutation reaches a terminal state.
func (p *Pending[K, V]) Done() <-chan struct{} {
	return p.done
}

// Committed reports whether the mutation has terminally committed.
func (p *Pending[K, V]) Committed() bool {
	select {
	case <-p.done:
	default:
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == stateCommitted
}

// Coordinator applies speculative transforms to a shared Store and rolls
// the whole collection back when a confirmation fails. Optimistic
// applications happen in call order; confirmations may resolve out of
// order and are not serialized.
type Coordinator[K comparable, V any] struct {
	store  *Store[K, V]
	logger *slog.Logger

	mu       sync.Mutex
	inFlight map[uuid.UUID]*Pending[K, V]
}

func NewCoordinator[K comparable, V any](store *Store[K, V], logger *slog.Logger) *Coordinator[K, V] {
	return &Coordinator[K, V]{
		store:    store,
		logger:   logger,
		inFlight: make(map[uuid.UUID]*Pending[K, V]),
	}
}

// Run snapshots the collection, publishes transform's result immediately
// and starts confirm in the background. The caller may keep issuing
// further mutations before the returned Pending resolves.
func (c *Coordinator[K, V]) Run(ctx context.Context, transform Transform[K, V], confirm ConfirmFunc) *Pending[K, V] {
	pending := &Pending[K, V]{
		id:    uuid.New(),
		done:  make(chan struct{}),
		state: stateOptimistic,
	}

	c.mu.Lock()
	rollback := c.store.Snapshot()
	next := transform(copyMap(rollback))
	c.store.replace(next)
	c.inFlight[pending.id] = pending
	c.mu.Unlock()

	go c.confirmAsync(ctx, pending, rollback, next, confirm)

	return pending
}

// InFlight returns the number of mutations awaiting confirmation.
func (c *Coordinator[K, V]) InFlight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.inFlight)
}

func (c *Coordinator[K, V]) confirmAsync(ctx context.Context, pending *Pending[K, V], rollback, next map[K]V, confirm ConfirmFunc) {
	err := confirm(ctx)

	c.mu.Lock()
	if err != nil {
		// Full restore of the pre-mutation snapshot; intervening changes
		// are discarded (last-snapshot-wins, see package doc).
		c.store.replace(copyMap(rollback))
	}
	delete(c.inFlight, pending.id)
	c.mu.Unlock()

	pending.mu.Lock()
	if err != nil {
		pending.state = stateRolledBack
		pending.snapshot = rollback
		pending.err = errs.Mark(err, errs.ErrConfirmationFailed)
		c.logger.Warn("optimistic mutation rolled back", "mutation_id", pending.id, "error", err)
	} else {
		pending.state = stateCommitted
		pending.snapshot = next
	}
	pending.mu.Unlock()

	close(pending.done)
}
