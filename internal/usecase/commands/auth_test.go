//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"canteen-coupon/internal/domain/auth"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/internal/pkg/jwt"
	"canteen-coupon/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	jwtService := jwt.NewService("test-secret", time.Hour)
	uc := commands.NewAuthCommands(commands.AdminAccount{Username: "admin", PasswordHash: string(hash)}, jwtService)

	testCases := []struct {
		name     string
		input    commands.LoginInput
		wantErr  error
		wantKind error
	}{
		{
			name:  "success: configured admin",
			input: commands.LoginInput{Username: " admin ", Password: "s3cret-pass"},
		},
		{
			name:     "error: wrong password",
			input:    commands.LoginInput{Username: "admin", Password: "nope"},
			wantErr:  auth.ErrInvalidCredentials,
			wantKind: errs.ErrUnauthorized,
		},
		{
			name:     "error: unknown user",
			input:    commands.LoginInput{Username: "root", Password: "s3cret-pass"},
			wantErr:  auth.ErrInvalidCredentials,
			wantKind: errs.ErrUnauthorized,
		},
		{
			name:     "error: missing password",
			input:    commands.LoginInput{Username: "admin"},
			wantErr:  auth.ErrPasswordRequired,
			wantKind: errs.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := uc.Login(ctx, tc.input)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				assert.True(t, errs.Is(err, tc.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, res.Token)

			claims, err := jwtService.ValidateToken(res.Token)
			require.NoError(t, err)
			assert.Equal(t, "admin", claims.Subject)
			assert.Equal(t, auth.RoleAdmin.String(), claims.Role)
		})
	}
}
