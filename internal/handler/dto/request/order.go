package request

import (
	"canteen-coupon/internal/domain/order"
	"canteen-coupon/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type SelectionRequest struct {
	Day      string `json:"day" binding:"required"`
	MealType string `json:"mealType" binding:"required"`
	Quantity int    `json:"quantity" binding:"min=1"`
	// Price is accepted for display round-trips only; the active menu price is charged.
	Price *decimal.Decimal `json:"price,omitempty"`
}

type InitiateOrderRequest struct {
	CustomerName  string             `json:"customerName" binding:"required"`
	CustomerEmail string             `json:"customerEmail" binding:"required"`
	CustomerPhone string             `json:"customerPhone" binding:"required"`
	OrderType     string             `json:"orderType" binding:"required"`
	Selections    []SelectionRequest `json:"selections" binding:"required,min=1,dive"`
}

func (r InitiateOrderRequest) ToInput() commands.InitiateOrderInput {
	selections := make([]order.SelectionInput, len(r.Selections))
	for i, s := range r.Selections {
		selections[i] = order.SelectionInput{
			Day:      s.Day,
			MealType: s.MealType,
			Quantity: s.Quantity,
		}
	}
	return commands.InitiateOrderInput{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		OrderType:     r.OrderType,
		Selections:    selections,
	}
}
