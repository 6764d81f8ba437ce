package order

import (
	"sort"
	"time"

	"canteen-coupon/internal/domain/coupon"
	"canteen-coupon/internal/domain/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order groups the coupons of one checkout. It is never stored on its own.
type Order struct {
	id      uuid.UUID
	coupons []*coupon.Coupon
}

func Reconstruct(id uuid.UUID, coupons []*coupon.Coupon) *Order {
	return &Order{id: id, coupons: coupons}
}

func (o *Order) ID() uuid.UUID             { return o.id }
func (o *Order) Coupons() []*coupon.Coupon { return o.coupons }

func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range o.coupons {
		total = total.Add(c.Price())
	}
	return total
}

// Line is one receipt row: identical coupons folded together.
type Line struct {
	Slot      menu.Slot
	MealDate  time.Time
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Lines folds coupons by (slot, meal date, unit price), ordered by date
// then meal.
func (o *Order) Lines() []Line {
	type key struct {
		slot  menu.Slot
		date  time.Time
		price string
	}
	idx := make(map[key]int)
	var lines []Line
	for _, c := range o.coupons {
		k := key{slot: c.Slot(), date: c.MealDate(), price: c.Price().String()}
		if i, ok := idx[k]; ok {
			lines[i].Quantity++
			lines[i].Total = lines[i].Total.Add(c.Price())
			continue
		}
		idx[k] = len(lines)
		lines = append(lines, Line{
			Slot:      c.Slot(),
			MealDate:  c.MealDate(),
			Quantity:  1,
			UnitPrice: c.Price(),
			Total:     c.Price(),
		})
	}
	sort.SliceStable(lines, func(i, j int) bool {
		if !lines[i].MealDate.Equal(lines[j].MealDate) {
			return lines[i].MealDate.Before(lines[j].MealDate)
		}
		return lines[i].Slot.Meal.Index() < lines[j].Slot.Meal.Index()
	})
	return lines
}
