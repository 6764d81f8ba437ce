package response

import (
	"time"

	"canteen-coupon/internal/usecase/commands"
	"canteen-coupon/internal/usecase/queries"
)

type InitiateOrderResponse struct {
	OrderID     string `json:"order_id"`
	CouponCount int    `json:"coupon_count"`
	Total       string `json:"total"`
}

func FromInitiateOrder(r *commands.InitiateOrderResult) *InitiateOrderResponse {
	return &InitiateOrderResponse{
		OrderID:     r.OrderID.String(),
		CouponCount: r.CouponCount,
		Total:       r.Total.StringFixed(2),
	}
}

type ConfirmOrderResponse struct {
	OrderID   string `json:"order_id"`
	Activated int64  `json:"activated"`
}

func FromConfirmOrder(r *commands.ConfirmOrderResult) *ConfirmOrderResponse {
	return &ConfirmOrderResponse{
		OrderID:   r.OrderID.String(),
		Activated: r.Activated,
	}
}

type ReceiptLineResponse struct {
	Day       string `json:"day_of_week"`
	MealType  string `json:"meal_type"`
	MealDate  string `json:"meal_date"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type ReceiptResponse struct {
	OrderID       string                `json:"order_id"`
	CustomerName  string                `json:"customer_name"`
	CustomerEmail string                `json:"customer_email"`
	CustomerPhone string                `json:"customer_phone"`
	OrderType     string                `json:"order_type"`
	CreatedAt     time.Time             `json:"created_at"`
	Lines         []ReceiptLineResponse `json:"lines"`
	Total         string                `json:"total"`
	Coupons       []CouponResponse      `json:"coupons"`
}

func FromReceipt(v *queries.ReceiptView) (*ReceiptResponse, error) {
	res := ReceiptResponse{
		OrderID:       v.OrderID.String(),
		CustomerName:  v.CustomerName,
		CustomerEmail: v.CustomerEmail,
		CustomerPhone: v.CustomerPhone,
		OrderType:     v.OrderType,
		CreatedAt:     v.CreatedAt,
		Total:         v.Total.StringFixed(2),
		Lines:         make([]ReceiptLineResponse, 0, len(v.Lines)),
	}
	if err := copyView(&res.Lines, v.Lines); err != nil {
		return nil, err
	}
	coupons, err := FromCouponViews(v.Coupons)
	if err != nil {
		return nil, err
	}
	res.Coupons = coupons
	return &res, nil
}
