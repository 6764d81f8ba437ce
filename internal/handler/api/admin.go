package api

import (
	"net/http"

	reqdto "canteen-coupon/internal/handler/dto/request"
	resdto "canteen-coupon/internal/handler/dto/response"
	"canteen-coupon/internal/handler/httperr"
	"canteen-coupon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	q queries.ReportQueries
}

func NewAdminHandler(q queries.ReportQueries) *AdminHandler {
	return &AdminHandler{q: q}
}

// @Summary Today's summary
// @Description Active and pending coupon counts per meal for today, plus the upcoming meal
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.TodaySummaryResponse
// @Router /api/admin/summary/today [get]
func (h *AdminHandler) SummaryToday(c *gin.Context) {
	summary, err := h.q.SummaryForToday(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "Failed to load summary")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTodaySummary(summary))
}

// @Summary Search coupons
// @Description Filter coupons; pending coupons are hidden unless status=Pending
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free text over name, email, phone and order id"
// @Param orderId query string false "Order ID"
// @Param name query string false "Customer name"
// @Param email query string false "Customer email"
// @Param phone query string false "Customer phone"
// @Param mealType query string false "Meal type"
// @Param status query string false "Coupon status"
// @Param date query string false "Meal date (YYYY-MM-DD)"
// @Success 200 {array} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/coupons [get]
func (h *AdminHandler) SearchCoupons(c *gin.Context) {
	var q reqdto.CouponSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, err := h.q.SearchCoupons(c.Request.Context(), q.ToFilters())
	if err != nil {
		httperr.FromError(c, err, "Coupon search failed")
		return
	}
	res, err := resdto.FromCouponViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Coupon search failed", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
