package cutoff

import (
	"fmt"
	"time"

	"canteen-coupon/internal/domain/menu"
	"canteen-coupon/internal/pkg/errs"
)

var (
	ErrUnknownMealType = errs.New("no cutoff configured for meal type")
	ErrInvalidCutoff   = errs.New("cutoff must be formatted as HH:MM")
)

type TimeOfDay struct {
	hour   int
	minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, errs.Mark(err, ErrInvalidCutoff)
	}
	return TimeOfDay{hour: t.Hour(), minute: t.Minute()}, nil
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// reachedBy reports whether the wall-clock time of now is at or past t.
func (t TimeOfDay) reachedBy(now time.Time) bool {
	h, m := now.Hour(), now.Minute()
	return h > t.hour || (h == t.hour && m >= t.minute)
}

// Policy decides whether a (day, meal) may still be ordered. It is pure:
// the caller supplies now, already expressed in the canteen's time zone.
type Policy struct {
	cutoffs map[menu.MealType]TimeOfDay
}

func NewPolicy(cutoffs map[menu.MealType]TimeOfDay) *Policy {
	c := make(map[menu.MealType]TimeOfDay, len(cutoffs))
	for k, v := range cutoffs {
		c[k] = v
	}
	return &Policy{cutoffs: c}
}

// NewPolicyFromConfig parses "HH:MM" values keyed by meal type name.
func NewPolicyFromConfig(raw map[string]string) (*Policy, error) {
	cutoffs := make(map[menu.MealType]TimeOfDay, len(raw))
	for name, value := range raw {
		meal, err := menu.ParseMealType(name)
		if err != nil {
			return nil, errs.Wrapf(err, "cutoff for %q", name)
		}
		tod, err := ParseTimeOfDay(value)
		if err != nil {
			return nil, errs.Wrapf(err, "cutoff for %s", meal)
		}
		cutoffs[meal] = tod
	}
	return NewPolicy(cutoffs), nil
}

// IsBookable: a different weekday is always open; the current weekday is
// open until the meal's cutoff minute. A meal without a cutoff fails closed.
func (p *Policy) IsBookable(day menu.DayOfWeek, meal menu.MealType, now time.Time) (bool, error) {
	cut, ok := p.cutoffs[meal]
	if !ok {
		return false, errs.Wrapf(ErrUnknownMealType, "meal type %q", string(meal))
	}
	if day != menu.DayFromWeekday(now.Weekday()) {
		return true, nil
	}
	return !cut.reachedBy(now), nil
}
