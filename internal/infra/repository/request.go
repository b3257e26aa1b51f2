package repository

import (
	"context"
	"time"

	"procure-chef/internal/domain/request"
	"procure-chef/internal/infra"
	"procure-chef/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepository struct {
	db *pgxpool.Pool
}

func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(ctx,
		`INSERT INTO requests (id, title, needed_by, priority, created_by) VALUES ($1, $2, $3, $4, $5)`,
		req.ID(), req.Title(), req.NeededBy(), string(req.Priority()), req.CreatedBy(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create request", err)
	}

	if err := insertItems(ctx, tx, req); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit request", err)
	}
	return nil
}

func (r *RequestRepository) Update(ctx context.Context, req *request.Request) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx,
		`UPDATE requests SET title = $2, needed_by = $3, priority = $4, updated_at = now() WHERE id = $1`,
		req.ID(), req.Title(), req.NeededBy(), string(req.Priority()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	// Items are replaced wholesale; they carry no state of their own.
	if _, err := tx.Exec(ctx, `DELETE FROM request_items WHERE request_id = $1`, req.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear request items", err)
	}
	if err := insertItems(ctx, tx, req); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit request update", err)
	}
	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, needed_by, priority, created_by, created_at, updated_at FROM requests WHERE id = $1`,
		id,
	)
	header, err := scanRequestHeader(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by ID", err)
	}

	items, err := r.findItems(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	return header.reconstruct(items[id]), nil
}

func (r *RequestRepository) FindAll(ctx context.Context) ([]*request.Request, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, needed_by, priority, created_by, created_at, updated_at FROM requests ORDER BY created_at`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}
	defer rows.Close()

	var headers []requestHeader
	var ids []uuid.UUID
	for rows.Next() {
		header, err := scanRequestHeader(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		headers = append(headers, header)
		ids = append(ids, header.id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request rows", err)
	}

	itemsByRequest, err := r.findItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*request.Request, 0, len(headers))
	for _, h := range headers {
		result = append(result, h.reconstruct(itemsByRequest[h.id]))
	}
	return result, nil
}

func (r *RequestRepository) findItems(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]request.Item, error) {
	if len(requestIDs) == 0 {
		return map[uuid.UUID][]request.Item{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, request_id, product_id, quantity, unit
		 FROM request_items WHERE request_id = ANY($1::uuid[]) ORDER BY request_id, position`,
		uuidStrings(requestIDs),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list request items", err)
	}
	defer rows.Close()

	byRequest := make(map[uuid.UUID][]request.Item, len(requestIDs))
	for rows.Next() {
		var (
			itemID, requestID, productID uuid.UUID
			quantity                     pgtype.Numeric
			unit                         string
		)
		if err := rows.Scan(&itemID, &requestID, &productID, &quantity, &unit); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request item row", err)
		}
		qty, err := pgconv.DecimalFromNumeric(quantity)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid quantity in request item", err)
		}
		item, err := request.NewItem(itemID, productID, qty, unit)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid request item row", err)
		}
		byRequest[requestID] = append(byRequest[requestID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request item rows", err)
	}
	return byRequest, nil
}

func insertItems(ctx context.Context, tx pgx.Tx, req *request.Request) error {
	for pos, it := range req.Items() {
		_, err := tx.Exec(ctx,
			`INSERT INTO request_items (id, request_id, product_id, quantity, unit, position)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			it.ID(), req.ID(), it.ProductID(), pgconv.NumericFromDecimal(it.Quantity()), it.Unit(), pos,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert request item", err)
		}
	}
	return nil
}

type requestHeader struct {
	id        uuid.UUID
	title     string
	neededBy  time.Time
	priority  string
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func scanRequestHeader(row pgx.Row) (requestHeader, error) {
	var h requestHeader
	err := row.Scan(&h.id, &h.title, &h.neededBy, &h.priority, &h.createdBy, &h.createdAt, &h.updatedAt)
	return h, err
}

func (h requestHeader) reconstruct(items []request.Item) *request.Request {
	return request.ReconstructRequest(
		h.id, h.title, items, h.neededBy,
		request.Priority(h.priority), h.createdBy, h.createdAt, h.updatedAt,
	)
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
