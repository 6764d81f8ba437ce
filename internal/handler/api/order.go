package api

import (
	"net/http"

	reqdto "canteen-coupon/internal/handler/dto/request"
	resdto "canteen-coupon/internal/handler/dto/response"
	"canteen-coupon/internal/handler/httperr"
	"canteen-coupon/internal/usecase/commands"
	"canteen-coupon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Initiate order
// @Description Book coupons for one or more (day, meal) selections. All selections succeed or none are booked.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.InitiateOrderRequest true "Order request"
// @Success 201 {object} resdto.InitiateOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/orders/initiate [post]
func (h *OrderHandler) Initiate(c *gin.Context) {
	var req reqdto.InitiateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.BindingMessage(err, "Invalid request"), nil)
		return
	}
	result, err := h.cmds.InitiateOrder(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.FromError(c, err, "Order could not be placed")
		return
	}
	c.Header("Location", "/api/orders/"+result.OrderID.String())
	c.JSON(http.StatusCreated, resdto.FromInitiateOrder(result))
}

// @Summary Confirm order
// @Description Activate every pending coupon of an order once payment is confirmed
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 200 {object} resdto.ConfirmOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/orders/{orderId}/confirm [post]
func (h *OrderHandler) Confirm(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}
	result, err := h.cmds.ConfirmOrder(c.Request.Context(), orderID)
	if err != nil {
		httperr.FromError(c, err, "Order confirmation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmOrder(result))
}

// @Summary Order receipt
// @Description Line items, total and coupons of an order
// @Tags orders
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} resdto.ReceiptResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{orderId} [get]
func (h *OrderHandler) Receipt(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}
	view, err := h.q.GetReceipt(c.Request.Context(), orderID)
	if err != nil {
		httperr.FromError(c, err, "Failed to load receipt")
		return
	}
	res, err := resdto.FromReceipt(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load receipt", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
