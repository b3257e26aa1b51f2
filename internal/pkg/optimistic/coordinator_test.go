//go:build unit

package optimistic_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"procure-chef/internal/pkg/errs"
	"procure-chef/internal/pkg/optimistic"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name  string
	Count int
}

func newTestCoordinator(t *testing.T, seed map[string]*entry) (*optimistic.Store[string, *entry], *optimistic.Coordinator[string, *entry]) {
	t.Helper()
	store := optimistic.NewStore[string, *entry]()
	store.Load(seed)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return store, optimistic.NewCoordinator(store, logger)
}

func confirmOK(context.Context) error { return nil }

func confirmAfter(release <-chan error) func(context.Context) error {
	return func(context.Context) error { return <-release }
}

func TestCoordinatorRun(t *testing.T) {
	ctx := context.Background()

	t.Run("speculative state is visible before confirmation resolves", func(t *testing.T) {
		store, coord := newTestCoordinator(t, nil)
		release := make(chan error)

		pending := coord.Run(ctx,
			func(m map[string]*entry) map[string]*entry {
				m["a"] = &entry{Name: "apples", Count: 3}
				return m
			},
			confirmAfter(release),
		)

		got, ok := store.Get("a")
		require.True(t, ok, "optimistic write must be readable immediately")
		assert.Equal(t, "apples", got.Name)
		assert.False(t, pending.Committed())
		assert.Equal(t, 1, coord.InFlight())

		release <- nil
		snapshot, err := pending.Wait(ctx)
		require.NoError(t, err)
		assert.True(t, pending.Committed())
		assert.Len(t, snapshot, 1)
		assert.Equal(t, 0, coord.InFlight())
	})

	t.Run("failed confirmation restores the pre-mutation collection", func(t *testing.T) {
		seed := map[string]*entry{
			"a": {Name: "apples", Count: 3},
			"b": {Name: "beets", Count: 7},
		}
		store, coord := newTestCoordinator(t, seed)
		before := store.Snapshot()

		confirmErr := errors.New("persistence rejected the write")
		pending := coord.Run(ctx,
			func(m map[string]*entry) map[string]*entry {
				delete(m, "a")
				m["c"] = &entry{Name: "carrots", Count: 1}
				return m
			},
			func(context.Context) error { return confirmErr },
		)

		snapshot, err := pending.Wait(ctx)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConfirmationFailed))
		assert.ErrorIs(t, err, confirmErr)

		// Field-for-field restore of the original collection.
		after := store.Snapshot()
		if diff := cmp.Diff(before, after); diff != "" {
			t.Errorf("collection not restored (-before +after):\n%s", diff)
		}
		if diff := cmp.Diff(before, snapshot); diff != "" {
			t.Errorf("pending snapshot differs from pre-mutation state:\n%s", diff)
		}
		assert.False(t, pending.Committed())
	})

	t.Run("optimistic delete rejected by confirmation reappears", func(t *testing.T) {
		seed := map[string]*entry{"x": {Name: "saffron", Count: 2}}
		store, coord := newTestCoordinator(t, seed)

		pending := coord.Run(ctx,
			func(m map[string]*entry) map[string]*entry {
				delete(m, "x")
				return m
			},
			func(context.Context) error { return errors.New("delete refused") },
		)

		_, err := pending.Wait(ctx)
		require.Error(t, err)

		restored, ok := store.Get("x")
		require.True(t, ok, "rejected delete must restore the entry")
		assert.Equal(t, "saffron", restored.Name)
	})

	t.Run("error surfaces exactly once per mutation", func(t *testing.T) {
		_, coord := newTestCoordinator(t, nil)

		pending := coord.Run(ctx,
			func(m map[string]*entry) map[string]*entry { return m },
			func(context.Context) error { return errors.New("boom") },
		)

		_, err1 := pending.Wait(ctx)
		_, err2 := pending.Wait(ctx)
		require.Error(t, err1)
		// Wait is idempotent after the terminal transition.
		assert.Equal(t, err1, err2)
	})

	t.Run("wait honors context cancellation", func(t *testing.T) {
		_, coord := newTestCoordinator(t, nil)
		release := make(chan error)
		defer close(release)

		pending := coord.Run(ctx,
			func(m map[string]*entry) map[string]*entry { return m },
			confirmAfter(release),
		)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := pending.Wait(cancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("overlapping mutations: later rollback discards earlier commit", func(t *testing.T) {
		// Documented last-snapshot-wins semantics: mutation 1 snapshots the
		// empty collection, mutation 2 lands and commits, then mutation 1
		// fails and restores its own (empty) snapshot, wiping mutation 2.
		store, coord := newTestCoordinator(t, nil)
		releaseFirst := make(chan error)

		first := coord.Run(ctx,
			func(m map[string]*entry) map[string]*entry {
				m["first"] = &entry{Name: "first"}
				return m
			},
			confirmAfter(releaseFirst),
		)

		second := coord.Run(ctx,
			func(m map[string]*entry) map[string]*entry {
				m["second"] = &entry{Name: "second"}
				return m
			},
			confirmOK,
		)
		_, err := second.Wait(ctx)
		require.NoError(t, err)
		_, ok := store.Get("second")
		require.True(t, ok)

		releaseFirst <- errors.New("first confirmation failed")
		_, err = first.Wait(ctx)
		require.Error(t, err)

		_, ok = store.Get("second")
		assert.False(t, ok, "rollback restores the full pre-mutation snapshot")
		assert.Equal(t, 0, store.Len())
	})
}

func TestStore(t *testing.T) {
	t.Run("snapshot is a defensive copy", func(t *testing.T) {
		store := optimistic.NewStore[string, *entry]()
		store.Load(map[string]*entry{"a": {Name: "apples"}})

		snap := store.Snapshot()
		delete(snap, "a")

		_, ok := store.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("load replaces wholesale", func(t *testing.T) {
		store := optimistic.NewStore[string, *entry]()
		store.Load(map[string]*entry{"a": {Name: "apples"}})
		store.Load(map[string]*entry{"b": {Name: "beets"}})

		_, hasA := store.Get("a")
		_, hasB := store.Get("b")
		assert.False(t, hasA)
		assert.True(t, hasB)
	})
}
