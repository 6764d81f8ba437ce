package bootstrap

import (
	"canteen-coupon/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule wires config, storage and use cases without HTTP. The expiry
// job runs on it alone.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

// Module is the full API server graph.
var Module = fx.Options(
	CoreModule,
	components.HandlerModule,
)
