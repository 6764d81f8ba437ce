//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"canteen-coupon/internal/domain/auth"
	"canteen-coupon/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("round trip keeps subject and role", func(t *testing.T) {
		svc := jwt.NewService("secret", 8*time.Hour)

		token, expiresAt, err := svc.GenerateToken("admin_user", auth.RoleAdmin)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(8*time.Hour), expiresAt, time.Minute)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin_user", claims.Subject)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, jwt.Issuer, claims.Issuer)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute)

		token, _, err := svc.GenerateToken("admin_user", auth.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := jwt.NewService("secret", time.Hour).GenerateToken("admin_user", auth.RoleAdmin)
		require.NoError(t, err)

		_, err = jwt.NewService("other", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("non-HMAC signing method is rejected", func(t *testing.T) {
		unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{
			Role: "admin",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    jwt.Issuer,
				Subject:   "admin_user",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(unsigned)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("foreign issuer is rejected", func(t *testing.T) {
		signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
			Role: "admin",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "someone-else",
				Subject:   "admin_user",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(signed)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
