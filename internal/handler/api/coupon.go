package api

import (
	"net/http"
	"strconv"

	resdto "canteen-coupon/internal/handler/dto/response"
	"canteen-coupon/internal/handler/httperr"
	"canteen-coupon/internal/usecase/commands"
	"canteen-coupon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.ReportQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.ReportQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

func parseCouponID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon id", nil)
		return 0, false
	}
	return id, true
}

// @Summary Get coupon status
// @Description Public status lookup; customer details are not included.
// @Tags coupons
// @Produce json
// @Param id path int true "Coupon ID"
// @Success 200 {object} resdto.CouponStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, ok := parseCouponID(c)
	if !ok {
		return
	}
	view, err := h.q.GetCoupon(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "Failed to load coupon")
		return
	}
	res, err := resdto.FromCouponStatus(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupon", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Redeem coupon
// @Description Mark an active coupon as used. Succeeds at most once per coupon.
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Coupon ID"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/coupons/{id}/redeem [post]
func (h *CouponHandler) Redeem(c *gin.Context) {
	id, ok := parseCouponID(c)
	if !ok {
		return
	}
	result, err := h.cmds.Redeem(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "Redemption failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedeem(result))
}
