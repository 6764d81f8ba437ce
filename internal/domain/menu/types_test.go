//go:build unit

package menu_test

import (
	"testing"
	"time"

	"canteen-coupon/internal/domain/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayOfWeek(t *testing.T) {
	d, err := menu.ParseDayOfWeek(" wednesday ")
	require.NoError(t, err)
	assert.Equal(t, menu.Wednesday, d)

	_, err = menu.ParseDayOfWeek("Wed")
	assert.ErrorIs(t, err, menu.ErrInvalidDayOfWeek)
}

func TestDayWeekdayRoundTrip(t *testing.T) {
	for _, d := range menu.Days {
		assert.Equal(t, d, menu.DayFromWeekday(d.Weekday()))
	}
	assert.Equal(t, time.Sunday, menu.Sunday.Weekday())
	assert.Equal(t, menu.Monday, menu.DayFromWeekday(time.Monday))
}

func TestParseMealType(t *testing.T) {
	m, err := menu.ParseMealType("DINNER")
	require.NoError(t, err)
	assert.Equal(t, menu.Dinner, m)

	_, err = menu.ParseMealType("Snack")
	assert.ErrorIs(t, err, menu.ErrInvalidMealType)
	assert.False(t, menu.MealType("Snack").IsValid())
}

func TestSlotLess(t *testing.T) {
	assert.True(t, menu.Slot{Day: menu.Monday, Meal: menu.Dinner}.Less(menu.Slot{Day: menu.Tuesday, Meal: menu.Breakfast}))
	assert.True(t, menu.Slot{Day: menu.Sunday, Meal: menu.Breakfast}.Less(menu.Slot{Day: menu.Sunday, Meal: menu.Lunch}))
	assert.False(t, menu.Slot{Day: menu.Sunday, Meal: menu.Lunch}.Less(menu.Slot{Day: menu.Sunday, Meal: menu.Lunch}))
}
