package readstore

import (
	"context"

	"canteen-coupon/internal/infra"
	sqlc "canteen-coupon/internal/infra/sqlc/generated"
	"canteen-coupon/internal/pkg/pgconv"
	"canteen-coupon/internal/usecase/queries"
	"canteen-coupon/internal/usecase/shared"
)

type MenuViewQueries interface {
	ListActiveMenuItems(ctx context.Context, db sqlc.DBTX) ([]sqlc.MenuItems, error)
	ListActiveMenuPrices(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListActiveMenuPricesRow, error)
	ListMenuItemHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.ListMenuItemHistoryParams) ([]sqlc.MenuItems, error)
}

type MenuReadStore struct {
	queries MenuViewQueries
	db      sqlc.DBTX
}

func NewMenuReadStore(queries MenuViewQueries, db sqlc.DBTX) *MenuReadStore {
	return &MenuReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MenuReadStore) ListActive(ctx context.Context) ([]*queries.MenuItemView, error) {
	rows, err := r.queries.ListActiveMenuItems(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active menu items", err)
	}
	return toMenuItemViews(rows), nil
}

func (r *MenuReadStore) ListHistory(ctx context.Context, day, mealType string) ([]*queries.MenuItemView, error) {
	rows, err := r.queries.ListMenuItemHistory(ctx, r.db, sqlc.ListMenuItemHistoryParams{
		DayOfWeek: day,
		MealType:  mealType,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu item history", err)
	}
	return toMenuItemViews(rows), nil
}

func (r *MenuReadStore) ListActivePrices(ctx context.Context) ([]shared.MenuPriceSnapshot, error) {
	rows, err := r.queries.ListActiveMenuPrices(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active menu prices", err)
	}

	result := make([]shared.MenuPriceSnapshot, len(rows))
	for i, row := range rows {
		result[i] = shared.MenuPriceSnapshot{
			Day:      row.DayOfWeek,
			MealType: row.MealType,
			Price:    row.Price,
		}
	}
	return result, nil
}

func toMenuItemViews(rows []sqlc.MenuItems) []*queries.MenuItemView {
	result := make([]*queries.MenuItemView, len(rows))
	for i, row := range rows {
		result[i] = &queries.MenuItemView{
			ID:          row.ID,
			Day:         row.DayOfWeek,
			MealType:    row.MealType,
			Version:     row.Version,
			Description: row.Description,
			Price:       row.Price,
			IsActive:    row.IsActive,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result
}
