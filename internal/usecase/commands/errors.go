package commands

import (
	"canteen-coupon/internal/domain/cutoff"
	"canteen-coupon/internal/domain/order"
	"canteen-coupon/internal/pkg/errs"
)

var (
	ErrCouponNotFound      = errs.New("coupon not found")
	ErrCouponNotRedeemable = errs.New("coupon is not redeemable")
	ErrOrderNotFound       = errs.New("order not found")
	ErrOrderNotPending     = errs.New("order has no pending coupons")
)

// classifyOrderErr marks a domain error from order building with the
// category the handler maps to a status code.
func classifyOrderErr(err error) error {
	switch {
	case errs.IsAny(err, cutoff.ErrUnknownMealType, cutoff.ErrInvalidCutoff):
		return errs.Mark(err, errs.ErrConfiguration)
	case errs.IsAny(err, order.ErrItemNotOnMenu, order.ErrPastCutoff):
		return errs.Mark(err, errs.ErrNotBookable)
	default:
		return errs.Mark(err, errs.ErrValidation)
	}
}

// txFailure marks storage errors that carry no category yet.
func txFailure(err error) error {
	if err == nil {
		return nil
	}
	if errs.IsAny(err,
		errs.ErrValidation,
		errs.ErrNotBookable,
		errs.ErrNotFound,
		errs.ErrConflict,
		errs.ErrConfiguration,
		errs.ErrUnauthorized,
	) {
		return err
	}
	return errs.Mark(err, errs.ErrTransactionFailure)
}
