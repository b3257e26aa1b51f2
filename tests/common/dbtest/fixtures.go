//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"procure-chef/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func CreateTestSupplier(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	supplierID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO suppliers (id, name) VALUES ($1, $2)", supplierID, name)
	require.NoError(t, err)

	return supplierID
}

// CreateTestOffering installs a supplier offering with the given base price
// and the standard three-tier ladder (1-10, 11-50, 51+).
func CreateTestOffering(t *testing.T, db DBLike, supplierID, productID uuid.UUID, basePrice string, available bool) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO supplier_offerings (supplier_id, product_id, base_price, available) VALUES ($1, $2, $3, $4)",
		supplierID, productID, decimal.RequireFromString(basePrice), available,
	)
	require.NoError(t, err)

	tiers := []struct {
		min   string
		max   *decimal.Decimal
		price string
	}{
		{"1", decimalPtr("10"), "10.00"},
		{"11", decimalPtr("50"), "9.50"},
		{"51", nil, "9.00"},
	}
	for pos, tier := range tiers {
		_, err := db.Exec(ctx,
			"INSERT INTO offering_tiers (supplier_id, product_id, min_quantity, max_quantity, price, position) VALUES ($1, $2, $3, $4, $5, $6)",
			supplierID, productID, tier.min, pgconv.NumericFromDecimalPtr(tier.max), tier.price, pos,
		)
		require.NoError(t, err)
	}
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// SeedReferenceData is a hook for reference rows every e2e test expects.
// The procurement schema has none; suppliers and offerings are created per
// test so scenarios stay independent.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value
)

// ResetDB truncates every public table so each subtest starts from a clean
// slate. The TRUNCATE statement is built once per process.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
