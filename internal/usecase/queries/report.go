package queries

import (
	"context"
	"strings"
	"time"

	"canteen-coupon/internal/domain/coupon"
	"canteen-coupon/internal/domain/menu"
	"canteen-coupon/internal/infra"
	"canteen-coupon/internal/pkg/clock"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound = errs.New("coupon not found")
	ErrInvalidOrderID = errs.New("orderId must be a UUID")
	ErrInvalidDate    = errs.New("date must be formatted as YYYY-MM-DD")
)

const DefaultSearchPageSize = 200

type MealCounts struct {
	Active  int64 `json:"Active"`
	Pending int64 `json:"Pending"`
}

type TodaySummary struct {
	Date         time.Time             `json:"date"`
	Meals        map[string]MealCounts `json:"meals"`
	UpcomingMeal string                `json:"upcoming_meal"`
}

// CouponFilters holds raw query parameters; empty strings are unset.
type CouponFilters struct {
	Search   string
	OrderID  string
	Name     string
	Email    string
	Phone    string
	MealType string
	Status   string
	Date     string
}

// CouponSearch is the validated form handed to the read store. A nil
// Status means every status except Pending.
type CouponSearch struct {
	Search   *string
	OrderID  *uuid.UUID
	Name     *string
	Email    *string
	Phone    *string
	MealType *string
	Status   *string
	Date     *time.Time
	Limit    int32
}

type CouponReadStore interface {
	CountByMealAndStatus(ctx context.Context, mealDate time.Time, statuses []string) ([]StatusCount, error)
	Search(ctx context.Context, params CouponSearch) ([]*CouponView, error)
	FindByID(ctx context.Context, id int64) (*CouponView, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*CouponView, error)
}

type ReportQueries interface {
	SummaryForToday(ctx context.Context) (*TodaySummary, error)
	SearchCoupons(ctx context.Context, filters CouponFilters) ([]*CouponView, error)
	GetCoupon(ctx context.Context, id int64) (*CouponView, error)
}

type reportQueriesImpl struct {
	readStore CouponReadStore
	clock     clock.Clock
	pageSize  int32
}

func NewReportQueries(readStore CouponReadStore, clk clock.Clock, pageSize int32) ReportQueries {
	if pageSize <= 0 {
		pageSize = DefaultSearchPageSize
	}
	return &reportQueriesImpl{
		readStore: readStore,
		clock:     clk,
		pageSize:  pageSize,
	}
}

func (q *reportQueriesImpl) SummaryForToday(ctx context.Context) (*TodaySummary, error) {
	now := q.clock.Now()
	today := clock.Today(now)

	counts, err := q.readStore.CountByMealAndStatus(ctx, today, []string{
		coupon.StatusActive.String(),
		coupon.StatusPending.String(),
	})
	if err != nil {
		return nil, err
	}

	meals := make(map[string]MealCounts, len(menu.MealTypes))
	for _, m := range menu.MealTypes {
		meals[m.String()] = MealCounts{}
	}
	for _, c := range counts {
		mc, ok := meals[c.MealType]
		if !ok {
			continue
		}
		switch coupon.Status(c.Status) {
		case coupon.StatusActive:
			mc.Active += c.Count
		case coupon.StatusPending:
			mc.Pending += c.Count
		}
		meals[c.MealType] = mc
	}

	return &TodaySummary{
		Date:         today,
		Meals:        meals,
		UpcomingMeal: UpcomingMeal(now).String(),
	}, nil
}

// UpcomingMeal is the meal the counter is serving or preparing next.
func UpcomingMeal(now time.Time) menu.MealType {
	switch h := now.Hour(); {
	case h < 10:
		return menu.Breakfast
	case h < 16:
		return menu.Lunch
	default:
		return menu.Dinner
	}
}

func (q *reportQueriesImpl) SearchCoupons(ctx context.Context, filters CouponFilters) ([]*CouponView, error) {
	params, err := q.buildSearch(filters)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	return q.readStore.Search(ctx, params)
}

func (q *reportQueriesImpl) buildSearch(f CouponFilters) (CouponSearch, error) {
	params := CouponSearch{
		Search: ptr.NonBlank(f.Search),
		Name:   ptr.NonBlank(f.Name),
		Email:  ptr.NonBlank(f.Email),
		Phone:  ptr.NonBlank(f.Phone),
		Limit:  q.pageSize,
	}

	if s := strings.TrimSpace(f.OrderID); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return CouponSearch{}, ErrInvalidOrderID
		}
		params.OrderID = &id
	}
	if s := strings.TrimSpace(f.MealType); s != "" {
		m, err := menu.ParseMealType(s)
		if err != nil {
			return CouponSearch{}, err
		}
		params.MealType = ptr.Of(m.String())
	}
	if s := strings.TrimSpace(f.Status); s != "" {
		st, err := coupon.ParseStatus(s)
		if err != nil {
			return CouponSearch{}, err
		}
		params.Status = ptr.Of(st.String())
	}
	if s := strings.TrimSpace(f.Date); s != "" {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return CouponSearch{}, ErrInvalidDate
		}
		params.Date = &d
	}
	return params, nil
}

func (q *reportQueriesImpl) GetCoupon(ctx context.Context, id int64) (*CouponView, error) {
	c, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Wrapf(ErrCouponNotFound, "coupon %d", id), errs.ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}
