package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots keep commands independent of query view types.

type MenuPriceSnapshot struct {
	Day      string
	MealType string
	Price    decimal.Decimal
}

type CouponSnapshot struct {
	ID         int64
	OrderID    uuid.UUID
	MealDate   time.Time
	MealType   string
	Status     string
	RedeemedAt *time.Time
}
