//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"canteen-coupon/internal/handler/dto/request"
	"canteen-coupon/internal/handler/dto/response"
	"canteen-coupon/internal/pkg/config"
	"canteen-coupon/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func Login(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body response.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token, "login returned no token")
	return body.Token
}

// LoginAdmin logs in with the account from config.NewTestConfig.
func LoginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	return Login(t, router, config.TestAdminUsername, config.TestAdminPassword)
}
