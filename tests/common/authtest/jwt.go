//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"canteen-coupon/internal/domain/auth"
	"canteen-coupon/internal/pkg/config"
	"canteen-coupon/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateAdminToken(t *testing.T) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, _, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(config.TestAdminUsername, auth.RoleAdmin)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs an admin token that expired a minute ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T) string {
	t.Helper()
	token, _, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(config.TestAdminUsername, auth.RoleAdmin)
	require.NoError(t, err)
	return token
}

// CreateForeignToken signs an admin token with a key the server does not know.
func (h *JWTHelper) CreateForeignToken(t *testing.T) string {
	t.Helper()
	token, _, err := jwt.NewService(h.cfg.Secret+"-other", time.Hour).GenerateToken(config.TestAdminUsername, auth.RoleAdmin)
	require.NoError(t, err)
	return token
}
