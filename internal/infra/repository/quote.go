package repository

import (
	"context"
	"time"

	"procure-chef/internal/domain/quote"
	"procure-chef/internal/infra"
	"procure-chef/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QuoteRepository struct {
	db *pgxpool.Pool
}

func NewQuoteRepository(db *pgxpool.Pool) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) Save(ctx context.Context, q *quote.Quote) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(ctx,
		`INSERT INTO quotes (id, supplier_id, supplier_name, total_amount, created_at, expires_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		q.ID(), q.SupplierID(), q.SupplierName(),
		pgconv.NumericFromDecimal(q.TotalAmount()), q.CreatedAt(), q.ExpiresAt(), string(q.Status()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert quote", err)
	}

	for _, requestID := range q.RequestIDs() {
		_, err = tx.Exec(ctx,
			`INSERT INTO quote_requests (quote_id, request_id) VALUES ($1, $2)`,
			q.ID(), requestID,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert quote request link", err)
		}
	}

	for pos, it := range q.Items() {
		_, err = tx.Exec(ctx,
			`INSERT INTO quote_items
			   (quote_id, request_item_id, request_id, product_id, quantity, unit, unit_price, in_stock, note, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			q.ID(), it.RequestItemID(), it.RequestID(), it.ProductID(),
			pgconv.NumericFromDecimal(it.Quantity()), it.Unit(),
			pgconv.NumericFromDecimal(it.UnitPrice()), it.InStock(), it.Note(), pos,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert quote item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit quote", err)
	}
	return nil
}

func (r *QuoteRepository) FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]*quote.Quote, error) {
	rows, err := r.db.Query(ctx,
		`SELECT q.id, q.supplier_id, q.supplier_name, q.total_amount, q.created_at, q.expires_at, q.status
		 FROM quotes q
		 JOIN quote_requests qr ON qr.quote_id = q.id
		 WHERE qr.request_id = $1
		 ORDER BY q.created_at, q.id`,
		requestID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotes", err)
	}
	defer rows.Close()

	type quoteRow struct {
		id           uuid.UUID
		supplierID   uuid.UUID
		supplierName string
		totalAmount  pgtype.Numeric
		createdAt    time.Time
		expiresAt    time.Time
		status       string
	}

	var headers []quoteRow
	var quoteIDs []uuid.UUID
	for rows.Next() {
		var row quoteRow
		if err := rows.Scan(&row.id, &row.supplierID, &row.supplierName, &row.totalAmount, &row.createdAt, &row.expiresAt, &row.status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan quote row", err)
		}
		headers = append(headers, row)
		quoteIDs = append(quoteIDs, row.id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate quote rows", err)
	}
	if len(headers) == 0 {
		return nil, nil
	}

	requestIDsByQuote, err := r.findRequestLinks(ctx, quoteIDs)
	if err != nil {
		return nil, err
	}
	itemsByQuote, err := r.findItems(ctx, quoteIDs)
	if err != nil {
		return nil, err
	}

	quotes := make([]*quote.Quote, 0, len(headers))
	for _, h := range headers {
		total, err := pgconv.DecimalFromNumeric(h.totalAmount)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid total amount in quote", err)
		}
		status, err := quote.NewStatus(h.status)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid status in quote", err)
		}
		quotes = append(quotes, quote.ReconstructQuote(
			h.id, h.supplierID, h.supplierName,
			requestIDsByQuote[h.id], itemsByQuote[h.id],
			total, h.createdAt, h.expiresAt, status,
		))
	}
	return quotes, nil
}

func (r *QuoteRepository) findRequestLinks(ctx context.Context, quoteIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT quote_id, request_id FROM quote_requests WHERE quote_id = ANY($1::uuid[]) ORDER BY quote_id, request_id`,
		uuidStrings(quoteIDs),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quote request links", err)
	}
	defer rows.Close()

	byQuote := make(map[uuid.UUID][]uuid.UUID, len(quoteIDs))
	for rows.Next() {
		var quoteID, requestID uuid.UUID
		if err := rows.Scan(&quoteID, &requestID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan quote request link", err)
		}
		byQuote[quoteID] = append(byQuote[quoteID], requestID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate quote request links", err)
	}
	return byQuote, nil
}

func (r *QuoteRepository) findItems(ctx context.Context, quoteIDs []uuid.UUID) (map[uuid.UUID][]quote.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT quote_id, request_item_id, request_id, product_id, quantity, unit, unit_price, in_stock, note
		 FROM quote_items WHERE quote_id = ANY($1::uuid[]) ORDER BY quote_id, position`,
		uuidStrings(quoteIDs),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quote items", err)
	}
	defer rows.Close()

	byQuote := make(map[uuid.UUID][]quote.Item, len(quoteIDs))
	for rows.Next() {
		var (
			quoteID, requestItemID, requestID, productID uuid.UUID
			quantity, unitPrice                          pgtype.Numeric
			unit, note                                   string
			inStock                                      bool
		)
		if err := rows.Scan(&quoteID, &requestItemID, &requestID, &productID, &quantity, &unit, &unitPrice, &inStock, &note); err != nil {
			return nil, infra.WrapRepoErr("failed to scan quote item row", err)
		}
		qty, err := pgconv.DecimalFromNumeric(quantity)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid quantity in quote item", err)
		}
		price, err := pgconv.DecimalFromNumeric(unitPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid unit price in quote item", err)
		}
		byQuote[quoteID] = append(byQuote[quoteID], quote.ReconstructItem(
			requestItemID, requestID, productID, qty, unit, price, inStock, note,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate quote item rows", err)
	}
	return byQuote, nil
}
