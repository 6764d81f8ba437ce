//go:build unit || e2e

package builder

import (
	"time"

	reqdto "canteen-coupon/internal/handler/dto/request"
	"canteen-coupon/internal/usecase/commands"
	"canteen-coupon/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SelectionSpec struct {
	Day      string
	MealType string
	Quantity int
}

type OrderBuilder struct {
	OrderID    uuid.UUID
	Name       string
	Email      string
	Phone      string
	OrderType  string
	Selections []SelectionSpec
	UnitPrice  decimal.Decimal
	MealDate   time.Time
}

// NewOrderBuilder defaults to two Wednesday lunches.
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		OrderID:   uuid.New(),
		Name:      "Asha Rao",
		Email:     "asha@example.com",
		Phone:     "9876543210",
		OrderType: "Dine-In",
		Selections: []SelectionSpec{
			{Day: "Wednesday", MealType: "Lunch", Quantity: 2},
		},
		UnitPrice: decimal.RequireFromString("60.00"),
		MealDate:  time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) couponCount() int {
	n := 0
	for _, s := range b.Selections {
		n += s.Quantity
	}
	return n
}

// Build methods
func (b *OrderBuilder) BuildInitiateRequestDTO() reqdto.InitiateOrderRequest {
	selections := make([]reqdto.SelectionRequest, len(b.Selections))
	for i, s := range b.Selections {
		selections[i] = reqdto.SelectionRequest{Day: s.Day, MealType: s.MealType, Quantity: s.Quantity}
	}
	return reqdto.InitiateOrderRequest{
		CustomerName:  b.Name,
		CustomerEmail: b.Email,
		CustomerPhone: b.Phone,
		OrderType:     b.OrderType,
		Selections:    selections,
	}
}

func (b *OrderBuilder) BuildInitiateResult() *commands.InitiateOrderResult {
	n := b.couponCount()
	return &commands.InitiateOrderResult{
		OrderID:     b.OrderID,
		CouponCount: n,
		Total:       b.UnitPrice.Mul(decimal.NewFromInt(int64(n))),
	}
}

// BuildCouponViews expands the selections into one Pending view per unit.
func (b *OrderBuilder) BuildCouponViews() []*queries.CouponView {
	views := make([]*queries.CouponView, 0, b.couponCount())
	id := int64(1)
	for _, s := range b.Selections {
		for range s.Quantity {
			views = append(views, NewCouponBuilder().With(func(c *CouponBuilder) {
				c.ID = id
				c.OrderID = b.OrderID
				c.MealDate = b.MealDate
				c.Price = b.UnitPrice
				c.Name = b.Name
				c.Email = b.Email
				c.Phone = b.Phone
			}).BuildView())
			views[len(views)-1].Day = s.Day
			views[len(views)-1].MealType = s.MealType
			views[len(views)-1].Status = "Pending"
			id++
		}
	}
	return views
}

func (b *OrderBuilder) BuildReceiptView() *queries.ReceiptView {
	coupons := b.BuildCouponViews()
	receipt := &queries.ReceiptView{
		OrderID:       b.OrderID,
		CustomerName:  b.Name,
		CustomerEmail: b.Email,
		CustomerPhone: b.Phone,
		OrderType:     b.OrderType,
		CreatedAt:     time.Now(),
		Coupons:       coupons,
		Total:         decimal.Zero,
	}
	for _, s := range b.Selections {
		line := b.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
		receipt.Lines = append(receipt.Lines, queries.ReceiptLine{
			Day:       s.Day,
			MealType:  s.MealType,
			MealDate:  b.MealDate,
			Quantity:  s.Quantity,
			UnitPrice: b.UnitPrice,
			LineTotal: line,
		})
		receipt.Total = receipt.Total.Add(line)
	}
	return receipt
}
