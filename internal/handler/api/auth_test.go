//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"canteen-coupon/internal/domain/auth"
	"canteen-coupon/internal/handler/api"
	resdto "canteen-coupon/internal/handler/dto/response"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/internal/usecase/commands"
	"canteen-coupon/tests/common/builder"
	"canteen-coupon/tests/common/httptest"
	"canteen-coupon/tests/common/testutil"
	commandsmock "canteen-coupon/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)

	// Stands in for RequireAdmin
	fakeAdmin := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("auth_subject", "admin")
		c.Set("auth_role", auth.RoleAdmin)
		c.Next()
	}

	s.router.POST("/admin/login", s.handler.Login)
	s.router.GET("/admin/verify", fakeAdmin, s.handler.Verify)
	s.router.GET("/admin/verify-bare", s.handler.Verify)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

// ================================================================================
// TestLogin
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/admin/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()
	expiresAt := time.Now().Add(8 * time.Hour).UTC().Truncate(time.Second)

	s.Run("success: returns token", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.ToInput()).
			Return(&commands.LoginResult{Token: "signed.jwt.token", ExpiresAt: expiresAt}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("signed.jwt.token", body.Token)
		s.True(expiresAt.Equal(body.ExpiresAt))
	})

	s.Run("error: 400 on missing fields", func() {
		for _, key := range []string{"username", "password"} {
			requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(key, nil))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		}
	})

	s.Run("error: 401 on wrong credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(auth.ErrInvalidCredentials, errs.ErrUnauthorized)).Times(1)

		wrong := builder.NewAuthBuilder().With(func(a *builder.AuthBuilder) { a.Password = "nope" }).BuildDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, wrong, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "invalid username or password")
	})
}

// ================================================================================
// TestVerify
// ================================================================================

func (s *AuthHandlerTestSuite) TestVerify() {
	s.Run("success: echoes the token subject", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/verify", nil, "token")

		var body resdto.VerifyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Valid)
		s.Equal("admin", body.Username)
		s.Equal("admin", body.Role)
	})

	s.Run("error: 401 without an authenticated subject", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/verify-bare", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
