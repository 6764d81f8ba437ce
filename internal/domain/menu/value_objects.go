package menu

import (
	"strings"
	"unicode/utf8"

	"canteen-coupon/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	MaxDescriptionLength = 500
	PriceScale           = 2
)

var (
	ErrEmptyDescription   = errs.New("description cannot be empty")
	ErrDescriptionTooLong = errs.New("description exceeds maximum length")
	ErrInvalidPrice       = errs.New("price must be a number")
	ErrNonPositivePrice   = errs.New("price must be greater than zero")
	ErrPriceTooLarge      = errs.New("price exceeds the supported range")
)

// 10 digits with 2 after the point, matching the column type.
var maxPrice = decimal.New(1, 8)

type Description struct {
	text string
}

func NewDescription(s string) (Description, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Description{}, ErrEmptyDescription
	}
	if utf8.RuneCountInString(t) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{text: t}, nil
}

func (d Description) String() string { return d.text }

type Price struct {
	amount decimal.Decimal
}

func NewPrice(amount decimal.Decimal) (Price, error) {
	if !amount.IsPositive() {
		return Price{}, ErrNonPositivePrice
	}
	rounded := amount.Round(PriceScale)
	if !rounded.IsPositive() {
		return Price{}, ErrNonPositivePrice
	}
	if rounded.GreaterThanOrEqual(maxPrice) {
		return Price{}, ErrPriceTooLarge
	}
	return Price{amount: rounded}, nil
}

func ParsePrice(s string) (Price, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Price{}, ErrInvalidPrice
	}
	amount, err := decimal.NewFromString(t)
	if err != nil {
		return Price{}, errs.Mark(err, ErrInvalidPrice)
	}
	return NewPrice(amount)
}

func (p Price) Decimal() decimal.Decimal { return p.amount }
func (p Price) String() string           { return p.amount.StringFixed(PriceScale) }
