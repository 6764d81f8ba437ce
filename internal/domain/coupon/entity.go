package coupon

import (
	"time"

	"canteen-coupon/internal/domain/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Coupon is one redeemable unit of one meal on one date.
type Coupon struct {
	id         int64
	orderID    uuid.UUID
	mealDate   time.Time
	day        menu.DayOfWeek
	mealType   menu.MealType
	price      decimal.Decimal
	customer   Customer
	orderType  OrderType
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
	redeemedAt *time.Time
}

// NewPending builds an unsaved coupon; the id is assigned by storage.
func NewPending(
	orderID uuid.UUID,
	slot menu.Slot,
	mealDate time.Time,
	price menu.Price,
	customer Customer,
	orderType OrderType,
) *Coupon {
	return &Coupon{
		orderID:   orderID,
		mealDate:  mealDate,
		day:       slot.Day,
		mealType:  slot.Meal,
		price:     price.Decimal(),
		customer:  customer,
		orderType: orderType,
		status:    StatusPending,
	}
}

func ReconstructCoupon(
	id int64,
	orderID uuid.UUID,
	mealDate time.Time,
	day menu.DayOfWeek,
	mealType menu.MealType,
	price decimal.Decimal,
	customer Customer,
	orderType OrderType,
	status Status,
	createdAt, updatedAt time.Time,
	redeemedAt *time.Time,
) *Coupon {
	return &Coupon{
		id:         id,
		orderID:    orderID,
		mealDate:   mealDate,
		day:        day,
		mealType:   mealType,
		price:      price,
		customer:   customer,
		orderType:  orderType,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		redeemedAt: redeemedAt,
	}
}

func (c *Coupon) ID() int64               { return c.id }
func (c *Coupon) OrderID() uuid.UUID      { return c.orderID }
func (c *Coupon) MealDate() time.Time     { return c.mealDate }
func (c *Coupon) Day() menu.DayOfWeek     { return c.day }
func (c *Coupon) MealType() menu.MealType { return c.mealType }
func (c *Coupon) Slot() menu.Slot         { return menu.Slot{Day: c.day, Meal: c.mealType} }
func (c *Coupon) Price() decimal.Decimal  { return c.price }
func (c *Coupon) Customer() Customer      { return c.customer }
func (c *Coupon) OrderType() OrderType    { return c.orderType }
func (c *Coupon) Status() Status          { return c.status }
func (c *Coupon) CreatedAt() time.Time    { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time    { return c.updatedAt }
func (c *Coupon) RedeemedAt() *time.Time  { return c.redeemedAt }
