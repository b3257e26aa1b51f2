package queries

import (
	"context"

	"procure-chef/internal/pkg/errs"

	"github.com/google/uuid"
)

type offeringQueriesImpl struct {
	offeringRepo OfferingReader
}

func NewOfferingQueries(offeringRepo OfferingReader) OfferingQueries {
	return &offeringQueriesImpl{offeringRepo: offeringRepo}
}

func (q *offeringQueriesImpl) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*OfferingView, error) {
	offerings, err := q.offeringRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*OfferingView, 0, len(offerings))
	for _, o := range offerings {
		views = append(views, NewOfferingView(o))
	}
	return views, nil
}
