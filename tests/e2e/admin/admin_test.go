//go:build e2e

package admin_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"canteen-coupon/internal/handler/dto/response"
	"canteen-coupon/tests/common/authtest"
	"canteen-coupon/tests/common/builder"
	"canteen-coupon/tests/common/dbtest"
	"canteen-coupon/tests/common/httptest"
	"canteen-coupon/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	summaryURL = "/api/admin/summary/today"
	couponsURL = "/api/admin/coupons"
)

type adminSuite struct {
	e2e.SharedSuite
	adminToken string
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(adminSuite))
}

func (s *adminSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.adminToken = authtest.NewJWTHelper(s.Config.JWT).GenerateAdminToken(s.T())
}

// place books an order and optionally confirms it, returning the order id.
func (s *adminSuite) place(b *builder.OrderBuilder, confirm bool) string {
	var created response.InitiateOrderResponse
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders/initiate", b.BuildInitiateRequestDTO(), "")
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	if confirm {
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders/"+created.OrderID+"/confirm", nil, s.adminToken)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	}
	return created.OrderID
}

func (s *adminSuite) search(query string) []response.CouponResponse {
	var body []response.CouponResponse
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, couponsURL+query, nil, s.adminToken)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	return body
}

func selection(day, meal string, qty int) func(*builder.OrderBuilder) {
	return func(o *builder.OrderBuilder) {
		o.Selections = []builder.SelectionSpec{{Day: day, MealType: meal, Quantity: qty}}
	}
}

// ================================================================================
// TestSummaryToday
// ================================================================================

func (s *adminSuite) TestSummaryToday() {
	s.Run("counts today's active and pending coupons per meal", func() {
		dbtest.SeedMenu(s.T(), s.DB, builder.NewMenuBuilder())
		s.place(builder.NewOrderBuilder().With(selection("Monday", "Lunch", 2)), true)
		s.place(builder.NewOrderBuilder().With(selection("Monday", "Dinner", 1)), false)
		s.place(builder.NewOrderBuilder().With(selection("Tuesday", "Lunch", 4)), true)

		var body response.TodaySummaryResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, summaryURL, nil, s.adminToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)

		s.Equal("2026-10-12", body.Date)
		s.Equal("Breakfast", body.UpcomingMeal)
		s.Require().Len(body.Meals, 3)
		s.Equal(int64(0), body.Meals["Breakfast"].Active)
		s.Equal(int64(2), body.Meals["Lunch"].Active)
		s.Equal(int64(0), body.Meals["Lunch"].Pending)
		s.Equal(int64(1), body.Meals["Dinner"].Pending)
	})

	s.Run("upcoming meal follows the clock", func() {
		s.At(2026, time.October, 12, 17, 0)

		var body response.TodaySummaryResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, summaryURL, nil, s.adminToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal("Dinner", body.UpcomingMeal)
	})

	s.Run("requires an admin token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, summaryURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})
}

// ================================================================================
// TestSearchCoupons
// ================================================================================

func (s *adminSuite) TestSearchCoupons() {
	seed := func() (confirmed, pending string) {
		dbtest.SeedMenu(s.T(), s.DB, builder.NewMenuBuilder())
		confirmed = s.place(builder.NewOrderBuilder().With(func(o *builder.OrderBuilder) {
			o.Name = "Ravi Kumar"
			o.Email = "ravi@example.com"
			o.Phone = "9123456780"
			selection("Wednesday", "Lunch", 2)(o)
		}), true)
		pending = s.place(builder.NewOrderBuilder().With(selection("Thursday", "Breakfast", 1)), false)
		return confirmed, pending
	}

	s.Run("default listing hides pending coupons", func() {
		confirmed, _ := seed()

		got := s.search("")
		s.Require().Len(got, 2)
		for _, c := range got {
			s.Equal(confirmed, c.OrderID)
			s.Equal("Active", c.Status)
		}
	})

	s.Run("status=Pending lists only pending coupons", func() {
		_, pending := seed()

		got := s.search("?status=Pending")
		s.Require().Len(got, 1)
		s.Equal(pending, got[0].OrderID)
	})

	s.Run("filters narrow the result", func() {
		confirmed, _ := seed()
		testCases := []struct {
			name  string
			query string
			want  int
		}{
			{name: "free text on name", query: "?search=ravi", want: 2},
			{name: "free text without match", query: "?search=nobody", want: 0},
			{name: "order id", query: "?orderId=" + confirmed, want: 2},
			{name: "other order id", query: "?orderId=" + uuid.NewString(), want: 0},
			{name: "phone", query: "?phone=9123456780", want: 2},
			{name: "meal type", query: "?mealType=Lunch", want: 2},
			{name: "meal type without active coupons", query: "?mealType=Dinner", want: 0},
			{name: "meal date", query: "?date=2026-10-14", want: 2},
			{name: "other meal date", query: "?date=2026-10-15", want: 0},
		}
		for _, tc := range testCases {
			s.Len(s.search(tc.query), tc.want, tc.name)
		}
	})

	s.Run("malformed filters are rejected", func() {
		for _, query := range []string{"?orderId=abc", "?date=14-10-2026", "?status=Lost", "?mealType=Brunch"} {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, couponsURL+query, nil, s.adminToken)
			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
		}
	})
}

// ================================================================================
// TestExpiry
// ================================================================================

func (s *adminSuite) TestExpiry() {
	s.Run("active coupons past their meal date expire and cannot be redeemed", func() {
		dbtest.SeedMenu(s.T(), s.DB, builder.NewMenuBuilder())
		orderID := s.place(builder.NewOrderBuilder(), true)
		pendingID := s.place(builder.NewOrderBuilder().With(selection("Wednesday", "Dinner", 1)), false)

		s.At(2026, time.October, 14, 23, 0)
		n, err := s.Expiry.ExpireStale(s.T().Context())
		s.Require().NoError(err)
		s.Zero(n, "meal day itself is not stale")

		s.At(2026, time.October, 15, 0, 5)
		n, err = s.Expiry.ExpireStale(s.T().Context())
		s.Require().NoError(err)
		s.Equal(int64(2), n)

		rows := dbtest.CouponsByOrder(s.T(), s.DB, uuid.MustParse(orderID))
		s.Require().Len(rows, 2)
		for _, r := range rows {
			s.Equal("Expired", r.Status)
		}
		s.Equal("Pending", dbtest.CouponsByOrder(s.T(), s.DB, uuid.MustParse(pendingID))[0].Status)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("/api/coupons/%d/redeem", rows[0].ID), nil, s.adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Expired")

		got := s.search("?status=Expired")
		s.Len(got, 2)
	})
}
