package components

import (
	"context"

	"canteen-coupon/internal/handler"
	"canteen-coupon/internal/handler/api"
	"canteen-coupon/internal/handler/middleware"
	"canteen-coupon/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewMenuHandler,
		api.NewCouponHandler,
		api.NewAdminHandler,
		api.NewAuthHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
		func(o *api.OrderHandler, m *api.MenuHandler, c *api.CouponHandler, a *api.AdminHandler, au *api.AuthHandler) handler.Handlers {
			return handler.Handlers{Order: o, Menu: m, Coupon: c, Admin: a, Auth: au}
		},
	),
	fx.Invoke(handler.NewRouter),
)

// NewRateLimiter sweeps idle clients for the lifetime of the app.
func NewRateLimiter(lc fx.Lifecycle, cfg config.Config) *middleware.RateLimiter {
	rl := middleware.NewRateLimiter(cfg.RateLimit)
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			rl.StartCleanup(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return rl
}
