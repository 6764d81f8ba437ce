package response

import (
	"time"

	"canteen-coupon/internal/usecase/commands"
)

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromLogin(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{Token: r.Token, ExpiresAt: r.ExpiresAt}
}

type VerifyResponse struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
