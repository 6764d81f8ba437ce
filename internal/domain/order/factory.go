package order

import (
	"canteen-coupon/internal/domain/coupon"
	"canteen-coupon/internal/domain/cutoff"
	"canteen-coupon/internal/domain/menu"
	"canteen-coupon/internal/pkg/clock"
	"canteen-coupon/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrItemNotOnMenu = errs.New("no active menu item for selection")
	ErrPastCutoff    = errs.New("ordering for this meal has closed for today")
)

// PriceBook holds the active price for each slot at intake time.
type PriceBook map[menu.Slot]menu.Price

type Factory struct {
	Clock  clock.Clock
	Policy *cutoff.Policy
}

func NewFactory(clock clock.Clock, policy *cutoff.Policy) *Factory {
	return &Factory{
		Clock:  clock,
		Policy: policy,
	}
}

// Build checks every selection against the menu and cutoff, then explodes
// quantities into one Pending coupon per unit under a fresh order id.
// Any failing selection rejects the whole order.
func (f *Factory) Build(req *Request, prices PriceBook) (*Order, error) {
	now := f.Clock.Now()
	today := clock.Today(now)

	for _, sel := range req.selections {
		if _, ok := prices[sel.slot]; !ok {
			return nil, errs.Wrapf(ErrItemNotOnMenu, "%s", sel.slot)
		}
		ok, err := f.Policy.IsBookable(sel.slot.Day, sel.slot.Meal, now)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errs.Wrapf(ErrPastCutoff, "%s", sel.slot)
		}
	}

	id := uuid.New()
	coupons := make([]*coupon.Coupon, 0, len(req.selections))
	for _, sel := range req.selections {
		mealDate := coupon.MealDateFor(sel.slot.Day, today)
		price := prices[sel.slot]
		for range sel.quantity {
			coupons = append(coupons, coupon.NewPending(id, sel.slot, mealDate, price, req.customer, req.orderType))
		}
	}

	return &Order{id: id, coupons: coupons}, nil
}
