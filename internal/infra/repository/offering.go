package repository

import (
	"context"
	"time"

	"procure-chef/internal/domain/catalog"
	"procure-chef/internal/infra"
	"procure-chef/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OfferingRepository struct {
	db *pgxpool.Pool
}

func NewOfferingRepository(db *pgxpool.Pool) *OfferingRepository {
	return &OfferingRepository{db: db}
}

type offeringKey struct {
	supplierID uuid.UUID
	productID  uuid.UUID
}

func (r *OfferingRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*catalog.Offering, error) {
	return r.FindByProducts(ctx, []uuid.UUID{productID})
}

func (r *OfferingRepository) FindByProducts(ctx context.Context, productIDs []uuid.UUID) ([]*catalog.Offering, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT o.supplier_id, s.name, o.product_id, o.base_price, o.available, o.updated_at
		 FROM supplier_offerings o
		 JOIN suppliers s ON s.id = o.supplier_id
		 WHERE o.product_id = ANY($1::uuid[])
		 ORDER BY o.supplier_id, o.product_id`,
		uuidStrings(productIDs),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offerings", err)
	}
	defer rows.Close()

	type offeringRow struct {
		supplierID   uuid.UUID
		supplierName string
		productID    uuid.UUID
		basePrice    pgtype.Numeric
		available    bool
		updatedAt    time.Time
	}

	var headers []offeringRow
	for rows.Next() {
		var row offeringRow
		if err := rows.Scan(&row.supplierID, &row.supplierName, &row.productID, &row.basePrice, &row.available, &row.updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offering row", err)
		}
		headers = append(headers, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offering rows", err)
	}

	tiersByKey, err := r.findTiers(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	offerings := make([]*catalog.Offering, 0, len(headers))
	for _, h := range headers {
		basePrice, err := pgconv.DecimalFromNumeric(h.basePrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid base price in offering", err)
		}
		offerings = append(offerings, catalog.ReconstructOffering(
			h.supplierID, h.supplierName, h.productID,
			basePrice, tiersByKey[offeringKey{h.supplierID, h.productID}],
			h.available, h.updatedAt,
		))
	}
	return offerings, nil
}

func (r *OfferingRepository) findTiers(ctx context.Context, productIDs []uuid.UUID) (map[offeringKey][]catalog.VolumeTier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT supplier_id, product_id, min_quantity, max_quantity, price
		 FROM offering_tiers
		 WHERE product_id = ANY($1::uuid[])
		 ORDER BY supplier_id, product_id, position`,
		uuidStrings(productIDs),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offering tiers", err)
	}
	defer rows.Close()

	tiersByKey := make(map[offeringKey][]catalog.VolumeTier)
	for rows.Next() {
		var (
			supplierID, productID uuid.UUID
			minQty, maxQty, price pgtype.Numeric
		)
		if err := rows.Scan(&supplierID, &productID, &minQty, &maxQty, &price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offering tier row", err)
		}

		min, err := pgconv.DecimalFromNumeric(minQty)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid tier min quantity", err)
		}
		max, err := pgconv.DecimalPtrFromNumeric(maxQty)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid tier max quantity", err)
		}
		tierPrice, err := pgconv.DecimalFromNumeric(price)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid tier price", err)
		}

		tier, err := catalog.NewVolumeTier(min, max, tierPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid offering tier row", err)
		}
		key := offeringKey{supplierID, productID}
		tiersByKey[key] = append(tiersByKey[key], tier)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offering tier rows", err)
	}
	return tiersByKey, nil
}
