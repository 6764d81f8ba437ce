package usecase

import (
	"canteen-coupon/internal/domain/auth"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/internal/pkg/jwt"
)

// TokenValidator resolves a bearer token to the admin session behind it.
type TokenValidator interface {
	ValidateToken(tokenString string) (string, auth.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, auth.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", "", errs.Mark(err, errs.ErrUnauthorized)
	}

	role, err := auth.NewRole(claims.Role)
	if err != nil {
		return "", "", errs.Mark(errs.Wrapf(err, "session for %s", claims.Subject), errs.ErrUnauthorized)
	}
	return claims.Subject, role, nil
}
