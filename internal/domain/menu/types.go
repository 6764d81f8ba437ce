package menu

import (
	"strings"
	"time"

	"canteen-coupon/internal/pkg/errs"
)

var (
	ErrInvalidDayOfWeek = errs.New("dayOfWeek must be one of Monday..Sunday")
	ErrInvalidMealType  = errs.New("mealType must be one of Breakfast, Lunch, Dinner")
)

type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// Days lists the week in display order.
var Days = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func ParseDayOfWeek(s string) (DayOfWeek, error) {
	t := strings.TrimSpace(s)
	for _, d := range Days {
		if strings.EqualFold(t, string(d)) {
			return d, nil
		}
	}
	return "", ErrInvalidDayOfWeek
}

func DayFromWeekday(w time.Weekday) DayOfWeek {
	if w == time.Sunday {
		return Sunday
	}
	return Days[int(w)-1]
}

func (d DayOfWeek) String() string {
	return string(d)
}

func (d DayOfWeek) IsValid() bool {
	return d.Index() >= 0
}

// Index is the Monday-first position of the day, or -1.
func (d DayOfWeek) Index() int {
	for i, v := range Days {
		if v == d {
			return i
		}
	}
	return -1
}

func (d DayOfWeek) Weekday() time.Weekday {
	return time.Weekday((d.Index() + 1) % 7)
}

type MealType string

const (
	Breakfast MealType = "Breakfast"
	Lunch     MealType = "Lunch"
	Dinner    MealType = "Dinner"
)

var MealTypes = []MealType{Breakfast, Lunch, Dinner}

func ParseMealType(s string) (MealType, error) {
	t := strings.TrimSpace(s)
	for _, m := range MealTypes {
		if strings.EqualFold(t, string(m)) {
			return m, nil
		}
	}
	return "", ErrInvalidMealType
}

func (m MealType) String() string {
	return string(m)
}

func (m MealType) IsValid() bool {
	return m.Index() >= 0
}

func (m MealType) Index() int {
	for i, v := range MealTypes {
		if v == m {
			return i
		}
	}
	return -1
}

// Slot identifies one (day, meal) cell of the weekly menu.
type Slot struct {
	Day  DayOfWeek
	Meal MealType
}

func (s Slot) String() string {
	return string(s.Day) + " " + string(s.Meal)
}

// Less orders slots Monday..Sunday, then Breakfast..Dinner.
func (s Slot) Less(o Slot) bool {
	if s.Day != o.Day {
		return s.Day.Index() < o.Day.Index()
	}
	return s.Meal.Index() < o.Meal.Index()
}
