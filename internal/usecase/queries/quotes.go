package queries

import (
	"context"

	"procure-chef/internal/pkg/clock"
	"procure-chef/internal/pkg/errs"

	"github.com/google/uuid"
)

type quoteQueriesImpl struct {
	quoteRepo QuoteReader
	clock     clock.Clock
}

func NewQuoteQueries(quoteRepo QuoteReader, clk clock.Clock) QuoteQueries {
	return &quoteQueriesImpl{
		quoteRepo: quoteRepo,
		clock:     clk,
	}
}

func (q *quoteQueriesImpl) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*QuoteView, error) {
	quotes, err := q.quoteRepo.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := q.clock.Now()
	views := make([]*QuoteView, 0, len(quotes))
	for _, quote := range quotes {
		views = append(views, NewQuoteView(quote, now))
	}
	return views, nil
}
