package coupon

import (
	"canteen-coupon/internal/pkg/errs"
)

var (
	ErrInvalidStatus     = errs.New("status must be one of Pending, Active, Used, Expired")
	ErrInvalidTransition = errs.New("coupon status transition not allowed")
	ErrInvalidOrderType  = errs.New("orderType must be Dine-In or Takeaway")
)

type Status string

const (
	StatusPending Status = "Pending"
	StatusActive  Status = "Active"
	StatusUsed    Status = "Used"
	StatusExpired Status = "Expired"
)

var Statuses = []Status{StatusPending, StatusActive, StatusUsed, StatusExpired}

// transitions is the only source of allowed status changes.
var transitions = map[Status][]Status{
	StatusPending: {StatusActive},
	StatusActive:  {StatusUsed, StatusExpired},
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusUsed, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusUsed || s == StatusExpired
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the table allows it.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return s, errs.Wrapf(ErrInvalidTransition, "%s -> %s", s, next)
	}
	return next, nil
}

// Transition is a status change permitted by the table. Values only come
// from NewTransition, so the zero value is never Valid.
type Transition struct {
	from Status
	to   Status
}

func NewTransition(from, to Status) (Transition, error) {
	if _, err := from.TransitionTo(to); err != nil {
		return Transition{}, err
	}
	return Transition{from: from, to: to}, nil
}

// The lifecycle steps the service performs.
var (
	Activation = mustTransition(StatusPending, StatusActive)
	Redemption = mustTransition(StatusActive, StatusUsed)
	Expiry     = mustTransition(StatusActive, StatusExpired)
)

func mustTransition(from, to Status) Transition {
	t, err := NewTransition(from, to)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Transition) From() Status { return t.from }
func (t Transition) To() Status   { return t.to }

func (t Transition) Valid() bool {
	return t.from.CanTransitionTo(t.to)
}

func (t Transition) String() string {
	return string(t.from) + " -> " + string(t.to)
}

type OrderType string

const (
	OrderTypeDineIn   OrderType = "Dine-In"
	OrderTypeTakeaway OrderType = "Takeaway"
)

func NewOrderType(s string) (OrderType, error) {
	ot := OrderType(s)
	switch ot {
	case OrderTypeDineIn, OrderTypeTakeaway:
		return ot, nil
	default:
		return "", ErrInvalidOrderType
	}
}

func (o OrderType) String() string {
	return string(o)
}
