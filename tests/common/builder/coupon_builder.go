//go:build unit || e2e

package builder

import (
	"time"

	"canteen-coupon/internal/domain/coupon"
	"canteen-coupon/internal/domain/menu"
	sqlc "canteen-coupon/internal/infra/sqlc/generated"
	"canteen-coupon/internal/usecase/queries"
	"canteen-coupon/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	ID         int64
	OrderID    uuid.UUID
	MealDate   time.Time
	Day        menu.DayOfWeek
	MealType   menu.MealType
	Price      decimal.Decimal
	Name       string
	Email      string
	Phone      string
	OrderType  coupon.OrderType
	Status     coupon.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
	RedeemedAt *time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Now()
	return &CouponBuilder{
		ID:        1,
		OrderID:   uuid.New(),
		MealDate:  time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC),
		Day:       menu.Wednesday,
		MealType:  menu.Lunch,
		Price:     decimal.RequireFromString("60.00"),
		Name:      "Asha Rao",
		Email:     "asha@example.com",
		Phone:     "9876543210",
		OrderType: coupon.OrderTypeDineIn,
		Status:    coupon.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CouponBuilder) BuildDomain() *coupon.Coupon {
	return coupon.ReconstructCoupon(
		b.ID, b.OrderID, b.MealDate, b.Day, b.MealType, b.Price,
		coupon.ReconstructCustomer(b.Name, b.Email, b.Phone),
		b.OrderType, b.Status, b.CreatedAt, b.UpdatedAt, b.RedeemedAt,
	)
}

func (b *CouponBuilder) BuildInfra() sqlc.Coupons {
	var redeemedAt pgtype.Timestamptz
	if b.RedeemedAt != nil {
		redeemedAt = pgtype.Timestamptz{Time: *b.RedeemedAt, Valid: true}
	}
	return sqlc.Coupons{
		ID:            b.ID,
		OrderID:       b.OrderID,
		MealDate:      pgtype.Date{Time: b.MealDate, Valid: true},
		DayOfWeek:     b.Day.String(),
		MealType:      b.MealType.String(),
		Price:         b.Price,
		CustomerName:  b.Name,
		CustomerEmail: b.Email,
		CustomerPhone: b.Phone,
		OrderType:     b.OrderType.String(),
		Status:        b.Status.String(),
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
		RedeemedAt:    redeemedAt,
	}
}

func (b *CouponBuilder) BuildView() *queries.CouponView {
	return &queries.CouponView{
		ID:            b.ID,
		OrderID:       b.OrderID,
		MealDate:      b.MealDate,
		Day:           b.Day.String(),
		MealType:      b.MealType.String(),
		Price:         b.Price,
		CustomerName:  b.Name,
		CustomerEmail: b.Email,
		CustomerPhone: b.Phone,
		OrderType:     b.OrderType.String(),
		Status:        b.Status.String(),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		RedeemedAt:    b.RedeemedAt,
	}
}

func (b *CouponBuilder) BuildSnapshot() *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:         b.ID,
		OrderID:    b.OrderID,
		MealDate:   b.MealDate,
		MealType:   b.MealType.String(),
		Status:     b.Status.String(),
		RedeemedAt: b.RedeemedAt,
	}
}
