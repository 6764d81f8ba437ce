package bootstrap

import (
	"time"

	"canteen-coupon/internal/pkg/config"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService signs admin sessions with JWT_SECRET for JWT_DURATION.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid JWT_DURATION %q", cfg.JWT.Duration)
	}
	if duration <= 0 {
		return nil, errs.Newf("JWT_DURATION must be positive, got %s", duration)
	}
	return jwt.NewService(cfg.JWT.Secret, duration), nil
}
