package commands

import (
	"context"
	"log/slog"

	"canteen-coupon/internal/domain/coupon"
	"canteen-coupon/internal/pkg/clock"
	"canteen-coupon/internal/pkg/metrics"
	"canteen-coupon/internal/usecase/shared"
)

type ExpiryCommands interface {
	// ExpireStale marks Active coupons whose meal date has passed as Expired.
	ExpireStale(ctx context.Context) (int64, error)
}

type expiryCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewExpiryCommands(uow shared.UnitOfWork, clk clock.Clock) ExpiryCommands {
	return &expiryCommandsImpl{uow: uow, clock: clk}
}

func (uc *expiryCommandsImpl) ExpireStale(ctx context.Context) (int64, error) {
	now := uc.clock.Now()
	today := clock.Today(now)

	var expired int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Coupons().TransitionStale(ctx, tx.DB(), today, coupon.Expiry, now)
		if derr != nil {
			return derr
		}
		expired = n
		return nil
	})
	if err != nil {
		return 0, txFailure(err)
	}

	metrics.RecordTransition(coupon.Expiry.To().String(), expired)
	slog.Info("stale coupons expired", "before", today.Format("2006-01-02"), "count", expired)
	return expired, nil
}
