package queries

import (
	"context"
	"sort"

	"procure-chef/internal/infra"
	"procure-chef/internal/pkg/errs"
	"procure-chef/internal/pkg/optimistic"

	"github.com/google/uuid"
)

// requestQueriesImpl reads the optimistic request collection, so callers
// see speculative mutations immediately. The repository is only consulted
// for ids the collection does not hold (e.g. before hydration).
type requestQueriesImpl struct {
	store *optimistic.Store[uuid.UUID, *RequestView]
	repo  RequestReader
}

func NewRequestQueries(store *optimistic.Store[uuid.UUID, *RequestView], repo RequestReader) RequestQueries {
	return &requestQueriesImpl{
		store: store,
		repo:  repo,
	}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	if view, ok := q.store.Get(id); ok {
		return view, nil
	}

	req, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return NewRequestView(req), nil
}

func (q *requestQueriesImpl) List(_ context.Context) ([]*RequestView, error) {
	snapshot := q.store.Snapshot()

	views := make([]*RequestView, 0, len(snapshot))
	for _, view := range snapshot {
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].CreatedAt.Equal(views[j].CreatedAt) {
			return views[i].ID.String() < views[j].ID.String()
		}
		return views[i].CreatedAt.Before(views[j].CreatedAt)
	})
	return views, nil
}
