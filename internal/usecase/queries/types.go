package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemView is one stored menu version, active or not.
type MenuItemView struct {
	ID          int64           `json:"id"`
	Day         string          `json:"day_of_week"`
	MealType    string          `json:"meal_type"`
	Version     int32           `json:"version"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CouponView represents read-optimized coupon data
type CouponView struct {
	ID            int64           `json:"id"`
	OrderID       uuid.UUID       `json:"order_id"`
	MealDate      time.Time       `json:"meal_date"`
	Day           string          `json:"day_of_week"`
	MealType      string          `json:"meal_type"`
	Price         decimal.Decimal `json:"price"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	OrderType     string          `json:"order_type"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	RedeemedAt    *time.Time      `json:"redeemed_at,omitempty"`
}

type StatusCount struct {
	MealType string
	Status   string
	Count    int64
}
