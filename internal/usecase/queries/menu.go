package queries

import (
	"context"

	"canteen-coupon/internal/domain/menu"
	"canteen-coupon/internal/pkg/errs"
)

type MenuReadStore interface {
	// ListActive returns active items ordered Monday..Sunday, Breakfast..Dinner.
	ListActive(ctx context.Context) ([]*MenuItemView, error)
	// ListHistory returns every version of one slot, newest first.
	ListHistory(ctx context.Context, day, mealType string) ([]*MenuItemView, error)
}

// ActiveMenu groups active items by day and then meal type.
type ActiveMenu map[string]map[string]*MenuItemView

type MenuQueries interface {
	GetActiveMenu(ctx context.Context) (ActiveMenu, error)
	ListActiveItems(ctx context.Context) ([]*MenuItemView, error)
	ListHistory(ctx context.Context, day, mealType string) ([]*MenuItemView, error)
}

type menuQueriesImpl struct {
	readStore MenuReadStore
}

func NewMenuQueries(readStore MenuReadStore) MenuQueries {
	return &menuQueriesImpl{readStore: readStore}
}

func (q *menuQueriesImpl) GetActiveMenu(ctx context.Context) (ActiveMenu, error) {
	items, err := q.readStore.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(ActiveMenu)
	for _, it := range items {
		meals, ok := grouped[it.Day]
		if !ok {
			meals = make(map[string]*MenuItemView, len(menu.MealTypes))
			grouped[it.Day] = meals
		}
		meals[it.MealType] = it
	}
	return grouped, nil
}

func (q *menuQueriesImpl) ListActiveItems(ctx context.Context) ([]*MenuItemView, error) {
	return q.readStore.ListActive(ctx)
}

func (q *menuQueriesImpl) ListHistory(ctx context.Context, day, mealType string) ([]*MenuItemView, error) {
	d, err := menu.ParseDayOfWeek(day)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	m, err := menu.ParseMealType(mealType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	return q.readStore.ListHistory(ctx, d.String(), m.String())
}
