//go:build unit || e2e

package builder

import (
	reqdto "canteen-coupon/internal/handler/dto/request"
	"canteen-coupon/internal/pkg/config"
)

type AuthBuilder struct {
	Username string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: config.TestAdminUsername,
		Password: config.TestAdminPassword,
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}
