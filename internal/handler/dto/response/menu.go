package response

import (
	"time"

	"canteen-coupon/internal/usecase/commands"
	"canteen-coupon/internal/usecase/queries"
)

type MenuItemResponse struct {
	ID          int64     `json:"id"`
	Day         string    `json:"day_of_week"`
	MealType    string    `json:"meal_type"`
	Version     int32     `json:"version"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromMenuItems(items []*queries.MenuItemView) ([]MenuItemResponse, error) {
	res := make([]MenuItemResponse, 0, len(items))
	if err := copyView(&res, items); err != nil {
		return nil, err
	}
	return res, nil
}

// ActiveMenuResponse groups items by day, then meal type.
type ActiveMenuResponse map[string]map[string]MenuItemResponse

func FromActiveMenu(m queries.ActiveMenu) (ActiveMenuResponse, error) {
	res := make(ActiveMenuResponse, len(m))
	for day, meals := range m {
		byMeal := make(map[string]MenuItemResponse, len(meals))
		for meal, v := range meals {
			var item MenuItemResponse
			if err := copyView(&item, v); err != nil {
				return nil, err
			}
			byMeal[meal] = item
		}
		res[day] = byMeal
	}
	return res, nil
}

type RejectedRowResponse struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type PublishMenuResponse struct {
	Count       int64                 `json:"count"`
	Version     int32                 `json:"version"`
	Deactivated int64                 `json:"deactivated"`
	Rejected    []RejectedRowResponse `json:"rejected,omitempty"`
}

func FromPublishMenu(r *commands.PublishMenuResult) *PublishMenuResponse {
	res := &PublishMenuResponse{
		Count:       r.Count,
		Version:     r.Version,
		Deactivated: r.Deactivated,
	}
	for _, rej := range r.Rejected {
		res.Rejected = append(res.Rejected, RejectedRowResponse{
			Line:   rej.Row.Line,
			Reason: rej.Reason.Error(),
		})
	}
	return res
}
