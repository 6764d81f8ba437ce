package repository

import (
	"context"
	"time"

	"canteen-coupon/internal/domain/coupon"
	"canteen-coupon/internal/infra"
	"canteen-coupon/internal/infra/repository/converter"
	sqlc "canteen-coupon/internal/infra/sqlc/generated"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/internal/pkg/pgconv"
	"canteen-coupon/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponWriteQueries interface {
	InsertCoupons(ctx context.Context, db sqlc.DBTX, arg []sqlc.InsertCouponsParams) (int64, error)
	TransitionOrderCoupons(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionOrderCouponsParams) (int64, error)
	TransitionCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionCouponParams) (sqlc.Coupons, error)
	TransitionStaleCoupons(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionStaleCouponsParams) (int64, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CouponRepository) CreateBatch(ctx context.Context, tx sqlc.DBTX, coupons []*coupon.Coupon) (int64, error) {
	params := converter.CouponsToInsertParams(coupons)
	n, err := r.queries.InsertCoupons(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert coupons", err)
	}
	if n != int64(len(params)) {
		return 0, infra.WrapRepoErr("failed to insert coupons", errs.Newf("copied %d of %d rows", n, len(params)))
	}
	return n, nil
}

// Every status write below is a compare-and-set on t.From(); rows in any
// other status are left alone.
func checkTransition(t coupon.Transition) error {
	if !t.Valid() {
		return errs.Wrapf(coupon.ErrInvalidTransition, "%s", t)
	}
	return nil
}

func (r *CouponRepository) TransitionOrder(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, t coupon.Transition, at time.Time) (int64, error) {
	if err := checkTransition(t); err != nil {
		return 0, err
	}
	n, err := r.queries.TransitionOrderCoupons(ctx, tx, sqlc.TransitionOrderCouponsParams{
		ToStatus:   t.To().String(),
		UpdatedAt:  pgconv.TimeToPgtype(at),
		OrderID:    orderID,
		FromStatus: t.From().String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update order coupons", err)
	}
	return n, nil
}

// TransitionCoupon stamps redeemed_at when the target status is Used.
func (r *CouponRepository) TransitionCoupon(ctx context.Context, tx sqlc.DBTX, id int64, t coupon.Transition, at time.Time) (*shared.CouponSnapshot, error) {
	if err := checkTransition(t); err != nil {
		return nil, err
	}
	params := sqlc.TransitionCouponParams{
		ToStatus:   t.To().String(),
		UpdatedAt:  pgconv.TimeToPgtype(at),
		ID:         id,
		FromStatus: t.From().String(),
	}
	if t.To() == coupon.StatusUsed {
		params.RedeemedAt = pgconv.TimeToPgtype(at)
	}

	row, err := r.queries.TransitionCoupon(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no "+t.From().String()+" coupon to update", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update coupon", err)
	}
	return converter.CouponRowToSnapshot(row), nil
}

func (r *CouponRepository) TransitionStale(ctx context.Context, tx sqlc.DBTX, before time.Time, t coupon.Transition, at time.Time) (int64, error) {
	if err := checkTransition(t); err != nil {
		return 0, err
	}
	n, err := r.queries.TransitionStaleCoupons(ctx, tx, sqlc.TransitionStaleCouponsParams{
		ToStatus:   t.To().String(),
		UpdatedAt:  pgconv.TimeToPgtype(at),
		FromStatus: t.From().String(),
		Before:     pgconv.DateToPgtype(before),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update stale coupons", err)
	}
	return n, nil
}
