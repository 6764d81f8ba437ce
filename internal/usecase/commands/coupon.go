package commands

import (
	"context"
	"log/slog"
	"time"

	"canteen-coupon/internal/domain/coupon"
	"canteen-coupon/internal/infra"
	"canteen-coupon/internal/pkg/clock"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/internal/pkg/metrics"
	"canteen-coupon/internal/usecase/shared"

	"github.com/google/uuid"
)

type RedeemResult struct {
	CouponID   int64
	OrderID    uuid.UUID
	MealType   string
	MealDate   time.Time
	RedeemedAt time.Time
}

type CouponCommands interface {
	Redeem(ctx context.Context, couponID int64) (*RedeemResult, error)
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{uow: uow, clock: clk}
}

// Redeem moves an Active coupon to Used with a single conditional update.
// Of any number of concurrent callers for one id, exactly one succeeds.
func (uc *couponCommandsImpl) Redeem(ctx context.Context, couponID int64) (*RedeemResult, error) {
	now := uc.clock.Now()

	var snap *shared.CouponSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		used, derr := tx.Coupons().TransitionCoupon(ctx, tx.DB(), couponID, coupon.Redemption, now)
		if derr == nil {
			snap = used
			return nil
		}
		if !infra.IsKind(derr, infra.KindNotFound) {
			return derr
		}

		current, derr := tx.Reads().CouponByID(ctx, couponID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(errs.Wrapf(ErrCouponNotFound, "coupon %d", couponID), errs.ErrNotFound)
			}
			return derr
		}
		return notRedeemable(couponID, coupon.Status(current.Status))
	})
	if err != nil {
		recordRedemptionFailure(err)
		return nil, txFailure(err)
	}

	metrics.RecordRedemption(metrics.ResultSuccess)
	metrics.RecordTransition(coupon.Redemption.To().String(), 1)
	slog.Info("coupon redeemed", "coupon_id", couponID, "order_id", snap.OrderID.String())

	redeemedAt := now
	if snap.RedeemedAt != nil {
		redeemedAt = *snap.RedeemedAt
	}
	return &RedeemResult{
		CouponID:   snap.ID,
		OrderID:    snap.OrderID,
		MealType:   snap.MealType,
		MealDate:   snap.MealDate,
		RedeemedAt: redeemedAt,
	}, nil
}

func notRedeemable(id int64, current coupon.Status) error {
	err := errs.Wrapf(ErrCouponNotRedeemable, "coupon %d is %s", id, current)
	if _, terr := current.TransitionTo(coupon.Redemption.To()); terr != nil {
		err = errs.Mark(err, coupon.ErrInvalidTransition)
	}
	return errs.Mark(err, errs.ErrConflict)
}

func recordRedemptionFailure(err error) {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		metrics.RecordRedemption(metrics.ResultNotFound)
	case errs.Is(err, errs.ErrConflict):
		metrics.RecordRedemption(metrics.ResultConflict)
	default:
		metrics.RecordRedemption(metrics.ResultFailure)
	}
}
