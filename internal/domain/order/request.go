package order

import (
	"canteen-coupon/internal/domain/coupon"
	"canteen-coupon/internal/domain/menu"
	"canteen-coupon/internal/pkg/errs"
)

const MaxQuantityPerSelection = 50

var (
	ErrNoSelections     = errs.New("selections must contain at least one item")
	ErrInvalidQuantity  = errs.New("quantity must be at least 1")
	ErrQuantityTooLarge = errs.New("quantity exceeds the per-selection limit")
)

type SelectionInput struct {
	Day      string
	MealType string
	Quantity int
}

type Selection struct {
	slot     menu.Slot
	quantity int
}

func NewSelection(in SelectionInput) (Selection, error) {
	day, err := menu.ParseDayOfWeek(in.Day)
	if err != nil {
		return Selection{}, err
	}
	meal, err := menu.ParseMealType(in.MealType)
	if err != nil {
		return Selection{}, err
	}
	if in.Quantity < 1 {
		return Selection{}, ErrInvalidQuantity
	}
	if in.Quantity > MaxQuantityPerSelection {
		return Selection{}, ErrQuantityTooLarge
	}
	return Selection{slot: menu.Slot{Day: day, Meal: meal}, quantity: in.Quantity}, nil
}

func (s Selection) Slot() menu.Slot { return s.slot }
func (s Selection) Quantity() int   { return s.quantity }

// Request is a fully validated checkout, not yet priced or checked
// against the cutoff.
type Request struct {
	customer   coupon.Customer
	orderType  coupon.OrderType
	selections []Selection
}

func NewRequest(name, email, phone, orderType string, selections []SelectionInput) (*Request, error) {
	customer, err := coupon.NewCustomer(name, email, phone)
	if err != nil {
		return nil, err
	}
	ot, err := coupon.NewOrderType(orderType)
	if err != nil {
		return nil, err
	}
	if len(selections) == 0 {
		return nil, ErrNoSelections
	}

	parsed := make([]Selection, 0, len(selections))
	for i, in := range selections {
		sel, err := NewSelection(in)
		if err != nil {
			return nil, errs.Wrapf(err, "selections[%d]", i)
		}
		parsed = append(parsed, sel)
	}

	return &Request{customer: customer, orderType: ot, selections: parsed}, nil
}

func (r *Request) Customer() coupon.Customer   { return r.customer }
func (r *Request) OrderType() coupon.OrderType { return r.orderType }
func (r *Request) Selections() []Selection     { return r.selections }
