package request

import "canteen-coupon/internal/usecase/queries"

// CouponSearchQuery binds GET /admin/coupons query parameters.
type CouponSearchQuery struct {
	Search   string `form:"search"`
	OrderID  string `form:"orderId"`
	Name     string `form:"name"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	MealType string `form:"mealType"`
	Status   string `form:"status"`
	Date     string `form:"date"`
}

func (q CouponSearchQuery) ToFilters() queries.CouponFilters {
	return queries.CouponFilters{
		Search:   q.Search,
		OrderID:  q.OrderID,
		Name:     q.Name,
		Email:    q.Email,
		Phone:    q.Phone,
		MealType: q.MealType,
		Status:   q.Status,
		Date:     q.Date,
	}
}

type MenuHistoryQuery struct {
	Day      string `form:"day" binding:"required"`
	MealType string `form:"mealType" binding:"required"`
}
