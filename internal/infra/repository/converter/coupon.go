package converter

import (
	"canteen-coupon/internal/domain/coupon"
	"canteen-coupon/internal/domain/menu"
	sqlc "canteen-coupon/internal/infra/sqlc/generated"
	"canteen-coupon/internal/pkg/pgconv"
	"canteen-coupon/internal/usecase/shared"
)

func CouponToInsertParams(c *coupon.Coupon) sqlc.InsertCouponsParams {
	return sqlc.InsertCouponsParams{
		OrderID:       c.OrderID(),
		MealDate:      pgconv.DateToPgtype(c.MealDate()),
		DayOfWeek:     c.Day().String(),
		MealType:      c.MealType().String(),
		Price:         c.Price(),
		CustomerName:  c.Customer().Name(),
		CustomerEmail: c.Customer().Email(),
		CustomerPhone: c.Customer().Phone(),
		OrderType:     c.OrderType().String(),
		Status:        c.Status().String(),
	}
}

func CouponsToInsertParams(coupons []*coupon.Coupon) []sqlc.InsertCouponsParams {
	params := make([]sqlc.InsertCouponsParams, 0, len(coupons))
	for _, c := range coupons {
		params = append(params, CouponToInsertParams(c))
	}
	return params
}

func CouponRowToSnapshot(row sqlc.Coupons) *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:         row.ID,
		OrderID:    row.OrderID,
		MealDate:   pgconv.DateFromPgtype(row.MealDate),
		MealType:   row.MealType,
		Status:     row.Status,
		RedeemedAt: pgconv.TimePtrFromPgtype(row.RedeemedAt),
	}
}

func MenuBatchToInsertParams(version int32, batch *menu.Batch) []sqlc.InsertMenuItemsParams {
	params := make([]sqlc.InsertMenuItemsParams, 0, batch.Len())
	for _, e := range batch.Entries() {
		params = append(params, sqlc.InsertMenuItemsParams{
			DayOfWeek:   e.Slot.Day.String(),
			MealType:    e.Slot.Meal.String(),
			Version:     version,
			Description: e.Description.String(),
			Price:       e.Price.Decimal(),
			IsActive:    true,
		})
	}
	return params
}
