package components

import (
	"canteen-coupon/internal/domain/cutoff"
	"canteen-coupon/internal/domain/order"
	"canteen-coupon/internal/pkg/clock"
	"canteen-coupon/internal/pkg/config"
	"canteen-coupon/internal/pkg/password"
	"canteen-coupon/internal/usecase"
	"canteen-coupon/internal/usecase/commands"
	"canteen-coupon/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewCanteenClock,
	NewCutoffPolicy,
	order.NewFactory,
	NewAdminAccount,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewOrderCommands,
		commands.NewCouponCommands,
		commands.NewMenuCommands,
		commands.NewExpiryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMenuQueries,
		queries.NewOrderQueries,
		NewReportQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewCanteenClock reports wall time in the canteen's timezone, which
// decides meal dates and cutoffs.
func NewCanteenClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Canteen.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewLocalClock(clock.NewRealClock(), loc), nil
}

func NewCutoffPolicy(cfg config.Config) (*cutoff.Policy, error) {
	return cutoff.NewPolicyFromConfig(cfg.Canteen.Cutoffs())
}

func NewAdminAccount(cfg config.Config) (commands.AdminAccount, error) {
	if err := password.ValidateHash(cfg.Admin.PasswordHash, cfg.Admin.MinHashCost); err != nil {
		return commands.AdminAccount{}, err
	}
	return commands.AdminAccount{
		Username:     cfg.Admin.Username,
		PasswordHash: cfg.Admin.PasswordHash,
	}, nil
}

func NewReportQueries(store queries.CouponReadStore, clk clock.Clock, cfg config.Config) queries.ReportQueries {
	return queries.NewReportQueries(store, clk, cfg.Canteen.SearchPageSize)
}
