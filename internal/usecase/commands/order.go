package commands

import (
	"context"
	"log/slog"

	"canteen-coupon/internal/domain/coupon"
	"canteen-coupon/internal/domain/menu"
	"canteen-coupon/internal/domain/order"
	"canteen-coupon/internal/pkg/clock"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/internal/pkg/metrics"
	"canteen-coupon/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InitiateOrderInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	OrderType     string
	Selections    []order.SelectionInput
}

type InitiateOrderResult struct {
	OrderID     uuid.UUID
	CouponCount int
	Total       decimal.Decimal
}

type ConfirmOrderResult struct {
	OrderID   uuid.UUID
	Activated int64
}

type OrderCommands interface {
	InitiateOrder(ctx context.Context, in InitiateOrderInput) (*InitiateOrderResult, error)
	ConfirmOrder(ctx context.Context, orderID uuid.UUID) (*ConfirmOrderResult, error)
}

type orderCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *order.Factory
	clock   clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, factory *order.Factory, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		uow:     uow,
		factory: factory,
		clock:   clk,
	}
}

func (uc *orderCommandsImpl) InitiateOrder(ctx context.Context, in InitiateOrderInput) (*InitiateOrderResult, error) {
	req, err := order.NewRequest(in.CustomerName, in.CustomerEmail, in.CustomerPhone, in.OrderType, in.Selections)
	if err != nil {
		metrics.RecordOrderInitiated(metrics.ResultRejected)
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var built *order.Order
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snaps, derr := tx.Reads().ActiveMenuPrices(ctx)
		if derr != nil {
			return derr
		}
		prices, derr := priceBook(snaps)
		if derr != nil {
			return derr
		}

		o, derr := uc.factory.Build(req, prices)
		if derr != nil {
			return classifyOrderErr(derr)
		}
		if _, derr = tx.Coupons().CreateBatch(ctx, tx.DB(), o.Coupons()); derr != nil {
			return derr
		}
		built = o
		return nil
	})
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrConfiguration):
			slog.Error("cutoff configuration rejected order", "error", err.Error())
			metrics.RecordOrderInitiated(metrics.ResultRejected)
		case errs.Is(err, errs.ErrNotBookable):
			metrics.RecordOrderInitiated(metrics.ResultRejected)
		default:
			metrics.RecordOrderInitiated(metrics.ResultFailure)
		}
		return nil, txFailure(err)
	}

	metrics.RecordOrderInitiated(metrics.ResultSuccess)
	for _, sel := range req.Selections() {
		metrics.RecordCouponsIssued(sel.Slot().Meal.String(), sel.Quantity())
	}
	slog.Info("order initiated",
		"order_id", built.ID().String(),
		"coupons", len(built.Coupons()),
		"total", built.Total().StringFixed(menu.PriceScale))

	return &InitiateOrderResult{
		OrderID:     built.ID(),
		CouponCount: len(built.Coupons()),
		Total:       built.Total(),
	}, nil
}

func (uc *orderCommandsImpl) ConfirmOrder(ctx context.Context, orderID uuid.UUID) (*ConfirmOrderResult, error) {
	var activated int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Coupons().TransitionOrder(ctx, tx.DB(), orderID, coupon.Activation, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if n > 0 {
			activated = n
			return nil
		}

		total, derr := tx.Reads().CouponCountByOrder(ctx, orderID)
		if derr != nil {
			return derr
		}
		if total == 0 {
			return errs.Mark(errs.Wrapf(ErrOrderNotFound, "order %s", orderID), errs.ErrNotFound)
		}
		return errs.Mark(errs.Wrapf(ErrOrderNotPending, "order %s", orderID), errs.ErrConflict)
	})
	if err != nil {
		return nil, txFailure(err)
	}

	metrics.RecordTransition(coupon.Activation.To().String(), activated)
	slog.Info("order confirmed", "order_id", orderID.String(), "activated", activated)
	return &ConfirmOrderResult{OrderID: orderID, Activated: activated}, nil
}

// priceBook converts stored active prices into domain prices. A stored
// row that no longer parses is a data fault, not a client error.
func priceBook(snaps []shared.MenuPriceSnapshot) (order.PriceBook, error) {
	book := make(order.PriceBook, len(snaps))
	for _, s := range snaps {
		day, err := menu.ParseDayOfWeek(s.Day)
		if err != nil {
			return nil, errs.Wrap(err, "active menu row")
		}
		meal, err := menu.ParseMealType(s.MealType)
		if err != nil {
			return nil, errs.Wrap(err, "active menu row")
		}
		price, err := menu.NewPrice(s.Price)
		if err != nil {
			return nil, errs.Wrap(err, "active menu row")
		}
		book[menu.Slot{Day: day, Meal: meal}] = price
	}
	return book, nil
}
