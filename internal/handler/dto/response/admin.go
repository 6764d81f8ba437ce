package response

import "canteen-coupon/internal/usecase/queries"

type TodaySummaryResponse struct {
	Date         string                        `json:"date"`
	Meals        map[string]queries.MealCounts `json:"meals"`
	UpcomingMeal string                        `json:"upcoming_meal"`
}

func FromTodaySummary(s *queries.TodaySummary) *TodaySummaryResponse {
	return &TodaySummaryResponse{
		Date:         s.Date.Format(dateLayout),
		Meals:        s.Meals,
		UpcomingMeal: s.UpcomingMeal,
	}
}
