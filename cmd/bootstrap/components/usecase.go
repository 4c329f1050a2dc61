package components

import (
	"travel-checkout/internal/infra/events"
	"travel-checkout/internal/infra/guard"
	"travel-checkout/internal/pkg/clock"
	"travel-checkout/internal/pkg/config"
	"travel-checkout/internal/usecase"
	"travel-checkout/internal/usecase/commands"
	"travel-checkout/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewProgressNotifier,
	NewSessionGuard,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutUseCase,
		commands.NewReconciliationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReconciliationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewProgressNotifier always logs and also publishes when AMQP is configured.
func NewProgressNotifier(publisher *events.Publisher) commands.ProgressNotifier {
	if publisher == nil {
		return commands.NewLoggingNotifier()
	}
	return commands.NewMultiNotifier(commands.NewLoggingNotifier(), publisher)
}

// NewSessionGuard is Redis-backed when REDIS_ADDR is set so the guard holds
// across instances; otherwise it is per process.
func NewSessionGuard(cfg config.Config, rdb redis.UniversalClient, clk clock.Clock) guard.SessionGuard {
	if rdb == nil {
		return guard.NewMemoryGuard(cfg.Checkout.SessionLockTTL, clk)
	}
	return guard.NewRedisGuard(rdb, cfg.Checkout.SessionLockTTL)
}
