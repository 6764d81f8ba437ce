package api

import (
	"net/http"

	reqdto "canteen-coupon/internal/handler/dto/request"
	resdto "canteen-coupon/internal/handler/dto/response"
	"canteen-coupon/internal/handler/httperr"
	"canteen-coupon/internal/infra/spreadsheet"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/internal/usecase/commands"
	"canteen-coupon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const maxMenuUploadBytes = 5 << 20

var errUploadTooLarge = errs.New("menu upload exceeds 5 MiB")

type MenuHandler struct {
	cmds commands.MenuCommands
	q    queries.MenuQueries
}

func NewMenuHandler(cmds commands.MenuCommands, q queries.MenuQueries) *MenuHandler {
	return &MenuHandler{cmds: cmds, q: q}
}

// @Summary Active menu
// @Description Active items grouped by day, then meal type
// @Tags menu
// @Produce json
// @Success 200 {object} resdto.ActiveMenuResponse
// @Router /api/menu/active [get]
func (h *MenuHandler) Active(c *gin.Context) {
	m, err := h.q.GetActiveMenu(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "Failed to load menu")
		return
	}
	res, err := resdto.FromActiveMenu(m)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load menu", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Upload weekly menu
// @Description Replace the active menu with the rows of an .xlsx workbook (Day | Breakfast | price | Lunch | price | Dinner | price)
// @Tags menu
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Menu workbook"
// @Success 201 {object} resdto.PublishMenuResponse
// @Failure 400 {object} httperr.Response
// @Router /api/menu/upload [post]
func (h *MenuHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "A menu file is required in field \"file\"", nil)
		return
	}
	if fh.Size > maxMenuUploadBytes {
		httperr.AbortWithError(c, http.StatusBadRequest, errUploadTooLarge, errUploadTooLarge.Error(), nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Upload could not be read", nil)
		return
	}
	defer f.Close()

	rows, err := spreadsheet.ReadMenu(f)
	if err != nil {
		httperr.FromError(c, errs.Mark(err, errs.ErrValidation), "Upload could not be read")
		return
	}
	result, err := h.cmds.PublishMenu(c.Request.Context(), rows)
	if err != nil {
		httperr.FromError(c, err, "Menu publication failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPublishMenu(result))
}

// @Summary Active menu items
// @Description Flat list of active items with ids and versions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MenuItemResponse
// @Router /api/admin/menu [get]
func (h *MenuHandler) AdminList(c *gin.Context) {
	items, err := h.q.ListActiveItems(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "Failed to load menu")
		return
	}
	res, err := resdto.FromMenuItems(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load menu", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Menu slot history
// @Description Every stored version of one (day, meal) slot, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param day query string true "Day of week"
// @Param mealType query string true "Meal type"
// @Success 200 {array} resdto.MenuItemResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/menu/history [get]
func (h *MenuHandler) History(c *gin.Context) {
	var q reqdto.MenuHistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.BindingMessage(err, "day and mealType are required"), nil)
		return
	}
	items, err := h.q.ListHistory(c.Request.Context(), q.Day, q.MealType)
	if err != nil {
		httperr.FromError(c, err, "Failed to load menu history")
		return
	}
	res, err := resdto.FromMenuItems(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load menu history", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
