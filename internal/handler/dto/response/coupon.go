package response

import (
	"time"

	"canteen-coupon/internal/usecase/commands"
	"canteen-coupon/internal/usecase/queries"
)

type CouponResponse struct {
	ID            int64      `json:"id"`
	OrderID       string     `json:"order_id"`
	MealDate      string     `json:"meal_date"`
	Day           string     `json:"day_of_week"`
	MealType      string     `json:"meal_type"`
	Price         string     `json:"price"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	CustomerPhone string     `json:"customer_phone"`
	OrderType     string     `json:"order_type"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	RedeemedAt    *time.Time `json:"redeemed_at,omitempty"`
}

// CouponStatusResponse is the anonymous view of a coupon: no customer
// contact fields and no order id.
type CouponStatusResponse struct {
	ID         int64      `json:"id"`
	MealDate   string     `json:"meal_date"`
	Day        string     `json:"day_of_week"`
	MealType   string     `json:"meal_type"`
	Status     string     `json:"status"`
	RedeemedAt *time.Time `json:"redeemed_at,omitempty"`
}

func FromCouponStatus(v *queries.CouponView) (*CouponStatusResponse, error) {
	var res CouponStatusResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromCouponViews(views []*queries.CouponView) ([]CouponResponse, error) {
	res := make([]CouponResponse, 0, len(views))
	if err := copyView(&res, views); err != nil {
		return nil, err
	}
	return res, nil
}

type RedeemResponse struct {
	CouponID   int64     `json:"coupon_id"`
	OrderID    string    `json:"order_id"`
	MealType   string    `json:"meal_type"`
	MealDate   string    `json:"meal_date"`
	Status     string    `json:"status"`
	RedeemedAt time.Time `json:"redeemed_at"`
}

func FromRedeem(r *commands.RedeemResult) *RedeemResponse {
	return &RedeemResponse{
		CouponID:   r.CouponID,
		OrderID:    r.OrderID.String(),
		MealType:   r.MealType,
		MealDate:   r.MealDate.Format(dateLayout),
		Status:     "Used",
		RedeemedAt: r.RedeemedAt,
	}
}
