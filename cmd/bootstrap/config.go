package bootstrap

import (
	"log/slog"

	"travel-checkout/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logCheckoutLimits),
)

func logCheckoutLimits(cfg config.Config) {
	slog.Info("Checkout limits",
		"service_timeout", cfg.Services.Timeout,
		"session_lock_ttl", cfg.Checkout.SessionLockTTL,
		"checkout_budget", cfg.CheckoutBudget(),
		"redis", cfg.Redis.Enabled(),
		"amqp", cfg.AMQP.Enabled())
}
