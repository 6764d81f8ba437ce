package shared

import (
	"context"
	"time"

	"canteen-coupon/internal/domain/coupon"
	"canteen-coupon/internal/domain/menu"
	sqlc "canteen-coupon/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in a write transaction, replaying it on serialization
	// failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Coupons() CouponRepository
	Menu() MenuRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ActiveMenuPrices(ctx context.Context) ([]MenuPriceSnapshot, error)
	CouponByID(ctx context.Context, id int64) (*CouponSnapshot, error)
	CouponCountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
}

type CouponRepository interface {
	// CreateBatch inserts all coupons of one order and returns the row count.
	CreateBatch(ctx context.Context, tx sqlc.DBTX, coupons []*coupon.Coupon) (int64, error)
	// TransitionOrder applies t to every coupon of the order still in t.From().
	TransitionOrder(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, t coupon.Transition, at time.Time) (int64, error)
	// TransitionCoupon is a compare-and-set on t.From(); no row means another
	// caller won or the coupon was never in that status.
	TransitionCoupon(ctx context.Context, tx sqlc.DBTX, id int64, t coupon.Transition, at time.Time) (*CouponSnapshot, error)
	// TransitionStale applies t to coupons in t.From() with a meal date before the given day.
	TransitionStale(ctx context.Context, tx sqlc.DBTX, before time.Time, t coupon.Transition, at time.Time) (int64, error)
}

type MenuRepository interface {
	// LockPublication serializes publications for the rest of the transaction.
	LockPublication(ctx context.Context, tx sqlc.DBTX) error
	DeactivateAll(ctx context.Context, tx sqlc.DBTX) (int64, error)
	NextVersion(ctx context.Context, tx sqlc.DBTX) (int32, error)
	InsertBatch(ctx context.Context, tx sqlc.DBTX, version int32, batch *menu.Batch) (int64, error)
}
