//go:build unit || e2e

package builder

import (
	"time"

	"canteen-coupon/internal/domain/menu"
	sqlc "canteen-coupon/internal/infra/sqlc/generated"
	"canteen-coupon/internal/usecase/queries"
	"canteen-coupon/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// MenuBuilder produces a full week with one priced item per slot.
type MenuBuilder struct {
	Version   int32
	Prices    map[menu.MealType]string
	CreatedAt time.Time
	Skip      map[menu.Slot]bool
}

func NewMenuBuilder() *MenuBuilder {
	return &MenuBuilder{
		Version: 1,
		Prices: map[menu.MealType]string{
			menu.Breakfast: "40.00",
			menu.Lunch:     "60.00",
			menu.Dinner:    "70.00",
		},
		CreatedAt: time.Now(),
		Skip:      map[menu.Slot]bool{},
	}
}

func (b *MenuBuilder) With(mutate func(*MenuBuilder)) *MenuBuilder {
	mutate(b)
	return b
}

func (b *MenuBuilder) slots() []menu.Slot {
	var out []menu.Slot
	for _, d := range menu.Days {
		for _, m := range menu.MealTypes {
			s := menu.Slot{Day: d, Meal: m}
			if !b.Skip[s] {
				out = append(out, s)
			}
		}
	}
	return out
}

func description(s menu.Slot) string {
	return s.Meal.String() + " thali (" + s.Day.String() + ")"
}

// Build methods
func (b *MenuBuilder) BuildRows() []menu.Row {
	slots := b.slots()
	rows := make([]menu.Row, len(slots))
	for i, s := range slots {
		rows[i] = menu.Row{
			Line:        i + 2,
			Day:         s.Day.String(),
			MealType:    s.Meal.String(),
			Description: description(s),
			Price:       b.Prices[s.Meal],
		}
	}
	return rows
}

func (b *MenuBuilder) BuildBatch() (*menu.Batch, error) {
	return menu.NewBatch(b.BuildRows())
}

func (b *MenuBuilder) BuildInfra() []sqlc.MenuItems {
	slots := b.slots()
	items := make([]sqlc.MenuItems, len(slots))
	for i, s := range slots {
		items[i] = sqlc.MenuItems{
			ID:          int64(i + 1),
			DayOfWeek:   s.Day.String(),
			MealType:    s.Meal.String(),
			Version:     b.Version,
			Description: description(s),
			Price:       decimal.RequireFromString(b.Prices[s.Meal]),
			IsActive:    true,
			CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		}
	}
	return items
}

func (b *MenuBuilder) BuildViews() []*queries.MenuItemView {
	slots := b.slots()
	views := make([]*queries.MenuItemView, len(slots))
	for i, s := range slots {
		views[i] = &queries.MenuItemView{
			ID:          int64(i + 1),
			Day:         s.Day.String(),
			MealType:    s.Meal.String(),
			Version:     b.Version,
			Description: description(s),
			Price:       decimal.RequireFromString(b.Prices[s.Meal]),
			IsActive:    true,
			CreatedAt:   b.CreatedAt,
		}
	}
	return views
}

func (b *MenuBuilder) BuildPriceSnapshots() []shared.MenuPriceSnapshot {
	slots := b.slots()
	out := make([]shared.MenuPriceSnapshot, len(slots))
	for i, s := range slots {
		out[i] = shared.MenuPriceSnapshot{
			Day:      s.Day.String(),
			MealType: s.Meal.String(),
			Price:    decimal.RequireFromString(b.Prices[s.Meal]),
		}
	}
	return out
}

// BuildSheetRows renders the week as spreadsheet rows: a header, then one
// row per day with description/price pairs for each meal.
func (b *MenuBuilder) BuildSheetRows() [][]string {
	rows := [][]string{{"Day", "Breakfast", "Breakfast Price", "Lunch", "Lunch Price", "Dinner", "Dinner Price"}}
	for _, d := range menu.Days {
		row := []string{d.String()}
		for _, m := range menu.MealTypes {
			s := menu.Slot{Day: d, Meal: m}
			if b.Skip[s] {
				row = append(row, "", "")
				continue
			}
			row = append(row, description(s), b.Prices[m])
		}
		rows = append(rows, row)
	}
	return rows
}
