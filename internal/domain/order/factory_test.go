//go:build unit

package order_test

import (
	"testing"
	"time"

	"canteen-coupon/internal/domain/coupon"
	"canteen-coupon/internal/domain/cutoff"
	"canteen-coupon/internal/domain/menu"
	"canteen-coupon/internal/domain/order"
	"canteen-coupon/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func newFactory(t *testing.T, now time.Time) *order.Factory {
	t.Helper()
	policy, err := cutoff.NewPolicyFromConfig(map[string]string{
		"Breakfast": "08:30",
		"Lunch":     "12:30",
		"Dinner":    "19:30",
	})
	require.NoError(t, err)
	return order.NewFactory(clock.NewMockClock(now), policy)
}

func mustPrice(t *testing.T, v int64) menu.Price {
	t.Helper()
	p, err := menu.NewPrice(decimal.NewFromInt(v))
	require.NoError(t, err)
	return p
}

func newRequest(t *testing.T, selections ...order.SelectionInput) *order.Request {
	t.Helper()
	req, err := order.NewRequest("Asha", "asha@example.com", "9876543210", "Dine-In", selections)
	require.NoError(t, err)
	return req
}

func TestFactoryBuild(t *testing.T) {
	// Monday 2026-10-12, 10:00 IST.
	now := time.Date(2026, 10, 12, 10, 0, 0, 0, ist)
	prices := order.PriceBook{
		{Day: menu.Wednesday, Meal: menu.Lunch}:  mustPrice(t, 120),
		{Day: menu.Monday, Meal: menu.Breakfast}: mustPrice(t, 40),
		{Day: menu.Monday, Meal: menu.Dinner}:    mustPrice(t, 90),
	}

	t.Run("quantity expands into pending coupons sharing one order", func(t *testing.T) {
		req := newRequest(t, order.SelectionInput{Day: "Wednesday", MealType: "Lunch", Quantity: 3})

		o, err := newFactory(t, now).Build(req, prices)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, o.ID())
		require.Len(t, o.Coupons(), 3)

		wantDate := time.Date(2026, 10, 14, 0, 0, 0, 0, ist)
		for _, c := range o.Coupons() {
			assert.Equal(t, o.ID(), c.OrderID())
			assert.Equal(t, coupon.StatusPending, c.Status())
			assert.True(t, c.Price().Equal(decimal.NewFromInt(120)))
			assert.True(t, wantDate.Equal(c.MealDate()))
		}
		assert.True(t, o.Total().Equal(decimal.NewFromInt(360)))
	})

	t.Run("item missing from the active menu rejects the whole order", func(t *testing.T) {
		req := newRequest(t,
			order.SelectionInput{Day: "Wednesday", MealType: "Lunch", Quantity: 1},
			order.SelectionInput{Day: "Friday", MealType: "Lunch", Quantity: 1},
		)
		o, err := newFactory(t, now).Build(req, prices)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrItemNotOnMenu)
		assert.Contains(t, err.Error(), "Friday Lunch")
	})

	t.Run("same day meal past its cutoff rejects the whole order", func(t *testing.T) {
		req := newRequest(t,
			order.SelectionInput{Day: "Monday", MealType: "Dinner", Quantity: 1},
			order.SelectionInput{Day: "Monday", MealType: "Breakfast", Quantity: 1},
		)
		_, err := newFactory(t, now).Build(req, prices)
		assert.ErrorIs(t, err, order.ErrPastCutoff)
		assert.Contains(t, err.Error(), "Monday Breakfast")
	})

	t.Run("same day meal before its cutoff is dated today", func(t *testing.T) {
		req := newRequest(t, order.SelectionInput{Day: "Monday", MealType: "Dinner", Quantity: 1})
		o, err := newFactory(t, now).Build(req, prices)
		require.NoError(t, err)
		assert.True(t, time.Date(2026, 10, 12, 0, 0, 0, 0, ist).Equal(o.Coupons()[0].MealDate()))
	})

	t.Run("missing cutoff configuration fails closed", func(t *testing.T) {
		f := order.NewFactory(clock.NewMockClock(now), cutoff.NewPolicy(nil))
		req := newRequest(t, order.SelectionInput{Day: "Wednesday", MealType: "Lunch", Quantity: 1})
		_, err := f.Build(req, prices)
		assert.ErrorIs(t, err, cutoff.ErrUnknownMealType)
	})
}

func TestNewRequest(t *testing.T) {
	valid := order.SelectionInput{Day: "Monday", MealType: "Lunch", Quantity: 1}

	tests := []struct {
		name       string
		orderType  string
		selections []order.SelectionInput
		errIs      error
	}{
		{name: "valid", orderType: "Takeaway", selections: []order.SelectionInput{valid}},
		{name: "bad order type", orderType: "Delivery", selections: []order.SelectionInput{valid}, errIs: coupon.ErrInvalidOrderType},
		{name: "no selections", orderType: "Dine-In", errIs: order.ErrNoSelections},
		{name: "zero quantity", orderType: "Dine-In", selections: []order.SelectionInput{{Day: "Monday", MealType: "Lunch"}}, errIs: order.ErrInvalidQuantity},
		{name: "quantity above limit", orderType: "Dine-In", selections: []order.SelectionInput{{Day: "Monday", MealType: "Lunch", Quantity: order.MaxQuantityPerSelection + 1}}, errIs: order.ErrQuantityTooLarge},
		{name: "unknown day", orderType: "Dine-In", selections: []order.SelectionInput{{Day: "Someday", MealType: "Lunch", Quantity: 1}}, errIs: menu.ErrInvalidDayOfWeek},
		{name: "unknown meal", orderType: "Dine-In", selections: []order.SelectionInput{{Day: "Monday", MealType: "Brunch", Quantity: 1}}, errIs: menu.ErrInvalidMealType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := order.NewRequest("Asha", "asha@example.com", "9876543210", tt.orderType, tt.selections)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Len(t, req.Selections(), 1)
		})
	}
}

func TestOrderLines(t *testing.T) {
	now := time.Date(2026, 10, 12, 7, 0, 0, 0, ist)
	prices := order.PriceBook{
		{Day: menu.Tuesday, Meal: menu.Dinner}:    mustPrice(t, 90),
		{Day: menu.Tuesday, Meal: menu.Breakfast}: mustPrice(t, 40),
		{Day: menu.Monday, Meal: menu.Lunch}:      mustPrice(t, 60),
	}
	req := newRequest(t,
		order.SelectionInput{Day: "Tuesday", MealType: "Dinner", Quantity: 2},
		order.SelectionInput{Day: "Tuesday", MealType: "Breakfast", Quantity: 1},
		order.SelectionInput{Day: "Monday", MealType: "Lunch", Quantity: 1},
		order.SelectionInput{Day: "Tuesday", MealType: "Dinner", Quantity: 1},
	)
	o, err := newFactory(t, now).Build(req, prices)
	require.NoError(t, err)

	lines := o.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "Monday Lunch", lines[0].Slot.String())
	assert.Equal(t, "Tuesday Breakfast", lines[1].Slot.String())
	assert.Equal(t, "Tuesday Dinner", lines[2].Slot.String())
	assert.Equal(t, 3, lines[2].Quantity)
	assert.True(t, lines[2].Total.Equal(decimal.NewFromInt(270)))
	assert.True(t, o.Total().Equal(decimal.NewFromInt(370)))
}
