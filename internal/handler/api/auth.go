package api

import (
	"net/http"

	reqdto "canteen-coupon/internal/handler/dto/request"
	resdto "canteen-coupon/internal/handler/dto/response"
	"canteen-coupon/internal/handler/httperr"
	"canteen-coupon/internal/handler/middleware"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errNoSubject = errs.New("no authenticated subject in context")

type AuthHandler struct {
	cmds commands.AuthCommands
}

func NewAuthHandler(cmds commands.AuthCommands) *AuthHandler {
	return &AuthHandler{cmds: cmds}
}

// @Summary Admin login
// @Description Exchange the admin username and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.FromError(c, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromLogin(result))
}

// @Summary Verify admin token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.VerifyResponse
// @Failure 401 {object} httperr.Response
// @Router /api/admin/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoSubject, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetRole(c)
	c.JSON(http.StatusOK, resdto.VerifyResponse{Valid: true, Username: subject, Role: role.String()})
}
