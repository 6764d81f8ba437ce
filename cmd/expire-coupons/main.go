// Command expire-coupons marks Active coupons whose meal date has passed as
// Expired. It is meant to run from cron shortly after midnight.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"canteen-coupon/cmd/bootstrap"
	"canteen-coupon/internal/usecase/commands"

	"go.uber.org/fx"
)

func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, expiry commands.ExpiryCommands) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
				defer cancel()

				code := 0
				if _, err := expiry.ExpireStale(ctx); err != nil {
					slog.Error("coupon expiry failed", "error", err)
					code = 1
				}
				_ = shutdowner.Shutdown(fx.ExitCode(code))
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.CoreModule,
		fx.NopLogger,
		fx.Invoke(run),
	)
	if err := app.Start(context.Background()); err != nil {
		slog.Error("expire-coupons failed to start", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("expire-coupons failed to stop cleanly", "error", err)
	}
	os.Exit(sig.ExitCode)
}
