package bootstrap

import (
	"travel-checkout/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	RedisModule,
	AMQPModule,
	components.ClientModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
