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

	"canteen-coupon/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SeedMenu inserts the builder's week as the active menu.
func SeedMenu(t *testing.T, db DBLike, b *builder.MenuBuilder) {
	t.Helper()
	ctx := context.Background()
	for _, v := range b.BuildViews() {
		_, err := db.Exec(ctx,
			`INSERT INTO menu_items (day_of_week, meal_type, version, description, price, is_active)
			 VALUES ($1, $2, $3, $4, $5, true)`,
			v.Day, v.MealType, v.Version, v.Description, v.Price)
		require.NoError(t, err)
	}
}

type CouponRow struct {
	ID       int64
	MealDate time.Time
	Day      string
	MealType string
	Price    string
	Status   string
}

func CouponsByOrder(t *testing.T, db DBLike, orderID uuid.UUID) []CouponRow {
	t.Helper()
	rows, err := db.Query(context.Background(),
		`SELECT id, meal_date, day_of_week, meal_type, price::text, status
		 FROM coupons WHERE order_id = $1 ORDER BY id`, orderID)
	require.NoError(t, err)
	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[CouponRow])
	require.NoError(t, err)
	return out
}

func CountCoupons(t *testing.T, db DBLike) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT COUNT(*) FROM coupons").Scan(&n))
	return n
}

func CountActiveMenuItems(t *testing.T, db DBLike) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT COUNT(*) FROM menu_items WHERE is_active").Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
