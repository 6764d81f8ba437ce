package commands

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"canteen-coupon/internal/domain/auth"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/internal/pkg/jwt"
	"canteen-coupon/internal/pkg/password"
)

var (
	ErrTokenGeneration = errs.New("token generation failed")
)

// AdminAccount is the single configured back-office login.
type AdminAccount struct {
	Username     string
	PasswordHash string
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	account    AdminAccount
	jwtService *jwt.Service
}

func NewAuthCommands(account AdminAccount, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		account:    account,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(in.Username, in.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if err := a.verify(credentials); err != nil {
		slog.WarnContext(ctx, "admin login rejected", "username", credentials.Username())
		// Same error for unknown user and wrong password
		return nil, errs.Mark(auth.ErrInvalidCredentials, errs.ErrUnauthorized)
	}

	token, expiresAt, err := a.jwtService.GenerateToken(credentials.Username(), auth.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.InfoContext(ctx, "admin logged in", "username", credentials.Username())
	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}

func (a *authCommandsImpl) verify(c auth.Credentials) error {
	userOK := subtle.ConstantTimeCompare([]byte(c.Username()), []byte(a.account.Username)) == 1
	// Always run bcrypt so both failure paths take similar time.
	pwErr := password.Compare(a.account.PasswordHash, c.Password())
	if !userOK {
		return auth.ErrInvalidCredentials
	}
	return pwErr
}
