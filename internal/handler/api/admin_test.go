//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"canteen-coupon/internal/handler/api"
	resdto "canteen-coupon/internal/handler/dto/response"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/internal/usecase/queries"
	"canteen-coupon/tests/common/builder"
	"canteen-coupon/tests/common/httptest"
	queriesmock "canteen-coupon/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReportQueries
	handler     *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReportQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockQueries)

	s.router.GET("/admin/summary/today", s.handler.SummaryToday)
	s.router.GET("/admin/coupons", s.handler.SearchCoupons)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// TestSummaryToday
// ================================================================================

func (s *AdminHandlerTestSuite) TestSummaryToday() {
	summary := &queries.TodaySummary{
		Date: time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC),
		Meals: map[string]queries.MealCounts{
			"Breakfast": {Active: 3, Pending: 1},
			"Lunch":     {Active: 12},
			"Dinner":    {},
		},
		UpcomingMeal: "Lunch",
	}
	s.mockQueries.EXPECT().SummaryForToday(gomock.Any()).Return(summary, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/summary/today", nil, "")

	var body resdto.TodaySummaryResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("2026-10-15", body.Date)
	s.Equal("Lunch", body.UpcomingMeal)
	s.Equal(int64(3), body.Meals["Breakfast"].Active)
	s.Equal(int64(1), body.Meals["Breakfast"].Pending)
	s.Equal(int64(12), body.Meals["Lunch"].Active)
}

// ================================================================================
// TestSearchCoupons
// ================================================================================

func (s *AdminHandlerTestSuite) TestSearchCoupons() {
	views := []*queries.CouponView{
		builder.NewCouponBuilder().BuildView(),
		builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.ID = 2 }).BuildView(),
	}

	s.Run("success: forwards every query parameter", func() {
		expected := queries.CouponFilters{
			Search:   "asha",
			OrderID:  "0b0c8a52-6d4e-4b55-9a4f-1e0a1c9d2f10",
			Name:     "Asha",
			Email:    "asha@example.com",
			Phone:    "98765",
			MealType: "Lunch",
			Status:   "Active",
			Date:     "2026-10-14",
		}
		s.mockQueries.EXPECT().SearchCoupons(gomock.Any(), expected).Return(views, nil).Times(1)

		url := "/admin/coupons?search=asha&orderId=0b0c8a52-6d4e-4b55-9a4f-1e0a1c9d2f10&name=Asha" +
			"&email=asha@example.com&phone=98765&mealType=Lunch&status=Active&date=2026-10-14"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: no filters", func() {
		s.mockQueries.EXPECT().SearchCoupons(gomock.Any(), queries.CouponFilters{}).
			Return([]*queries.CouponView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/coupons", nil, "")

		var body []resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 400 for invalid filters", func() {
		s.mockQueries.EXPECT().SearchCoupons(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(queries.ErrInvalidDate, errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/coupons?date=14-10-2026", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})
}
