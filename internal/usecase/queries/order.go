package queries

import (
	"context"
	"time"

	"canteen-coupon/internal/domain/coupon"
	"canteen-coupon/internal/domain/menu"
	"canteen-coupon/internal/domain/order"
	"canteen-coupon/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrOrderNotFound = errs.New("order not found")

type ReceiptLine struct {
	Day       string          `json:"day_of_week"`
	MealType  string          `json:"meal_type"`
	MealDate  time.Time       `json:"meal_date"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type ReceiptView struct {
	OrderID       uuid.UUID       `json:"order_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	OrderType     string          `json:"order_type"`
	CreatedAt     time.Time       `json:"created_at"`
	Lines         []ReceiptLine   `json:"lines"`
	Total         decimal.Decimal `json:"total"`
	Coupons       []*CouponView   `json:"coupons"`
}

type OrderQueries interface {
	GetReceipt(ctx context.Context, orderID uuid.UUID) (*ReceiptView, error)
}

type orderQueriesImpl struct {
	readStore CouponReadStore
}

func NewOrderQueries(readStore CouponReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) GetReceipt(ctx context.Context, orderID uuid.UUID) (*ReceiptView, error) {
	views, err := q.readStore.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, errs.Mark(errs.Wrapf(ErrOrderNotFound, "order %s", orderID), errs.ErrNotFound)
	}

	coupons := make([]*coupon.Coupon, 0, len(views))
	for _, v := range views {
		coupons = append(coupons, toDomainCoupon(v))
	}
	o := order.Reconstruct(orderID, coupons)

	first := views[0]
	receipt := &ReceiptView{
		OrderID:       orderID,
		CustomerName:  first.CustomerName,
		CustomerEmail: first.CustomerEmail,
		CustomerPhone: first.CustomerPhone,
		OrderType:     first.OrderType,
		CreatedAt:     first.CreatedAt,
		Total:         o.Total(),
		Coupons:       views,
	}
	for _, l := range o.Lines() {
		receipt.Lines = append(receipt.Lines, ReceiptLine{
			Day:       l.Slot.Day.String(),
			MealType:  l.Slot.Meal.String(),
			MealDate:  l.MealDate,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.Total,
		})
	}
	return receipt, nil
}

func toDomainCoupon(v *CouponView) *coupon.Coupon {
	return coupon.ReconstructCoupon(
		v.ID,
		v.OrderID,
		v.MealDate,
		menu.DayOfWeek(v.Day),
		menu.MealType(v.MealType),
		v.Price,
		coupon.ReconstructCustomer(v.CustomerName, v.CustomerEmail, v.CustomerPhone),
		coupon.OrderType(v.OrderType),
		coupon.Status(v.Status),
		v.CreatedAt,
		v.UpdatedAt,
		v.RedeemedAt,
	)
}
