package coupon

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"canteen-coupon/internal/domain/menu"
	"canteen-coupon/internal/pkg/clock"
	"canteen-coupon/internal/pkg/errs"
)

const MaxCustomerNameLength = 100

var (
	ErrCustomerNameRequired  = errs.New("customerName is required")
	ErrCustomerNameTooLong   = errs.New("customerName exceeds maximum length")
	ErrCustomerEmailRequired = errs.New("customerEmail is required")
	ErrInvalidCustomerEmail  = errs.New("customerEmail is not a valid email address")
	ErrCustomerPhoneRequired = errs.New("customerPhone is required")
	ErrInvalidCustomerPhone  = errs.New("customerPhone must be a 10 digit mobile number")
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// Customer is the contact snapshot copied onto every coupon of an order.
type Customer struct {
	name  string
	email string
	phone string
}

func NewCustomer(name, email, phone string) (Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return Customer{}, ErrCustomerNameRequired
	}
	if utf8.RuneCountInString(name) > MaxCustomerNameLength {
		return Customer{}, ErrCustomerNameTooLong
	}
	if email == "" {
		return Customer{}, ErrCustomerEmailRequired
	}
	if !emailRegex.MatchString(email) {
		return Customer{}, ErrInvalidCustomerEmail
	}
	if phone == "" {
		return Customer{}, ErrCustomerPhoneRequired
	}
	if !phoneRegex.MatchString(phone) {
		return Customer{}, ErrInvalidCustomerPhone
	}
	return Customer{name: name, email: email, phone: phone}, nil
}

func ReconstructCustomer(name, email, phone string) Customer {
	return Customer{name: name, email: email, phone: phone}
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }
func (c Customer) Phone() string { return c.phone }

// MealDateFor resolves day to its next occurrence on or after today.
// When today already is day, today is returned.
func MealDateFor(day menu.DayOfWeek, today time.Time) time.Time {
	start := clock.Today(today)
	ahead := (int(day.Weekday()) - int(start.Weekday()) + 7) % 7
	return start.AddDate(0, 0, ahead)
}
