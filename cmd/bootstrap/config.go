package bootstrap

import (
	"fmt"

	"canteen-coupon/internal/domain/cutoff"
	"canteen-coupon/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

// LoadConfig reads the environment and rejects canteen settings that would
// otherwise only fail on the first order.
func LoadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if _, err := cfg.Canteen.Location(); err != nil {
		return config.Config{}, err
	}
	if _, err := cutoff.NewPolicyFromConfig(cfg.Canteen.Cutoffs()); err != nil {
		return config.Config{}, fmt.Errorf("invalid cutoff settings: %w", err)
	}
	return cfg, nil
}
