package components

import (
	"travel-checkout/internal/handler"
	"travel-checkout/internal/handler/api"
	"travel-checkout/internal/handler/middleware"
	"travel-checkout/internal/infra/guard"
	"travel-checkout/internal/pkg/config"
	"travel-checkout/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewCheckoutHandler,
		api.NewReconciliationHandler,
		middleware.NewAuthMiddleware,
		func(checkout *api.CheckoutHandler, reconciliation *api.ReconciliationHandler) handler.Handlers {
			return handler.Handlers{
				Checkout:       checkout,
				Reconciliation: reconciliation,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewCheckoutHandler(
	checkout commands.CheckoutCommands,
	reconciliations commands.ReconciliationCommands,
	sessionGuard guard.SessionGuard,
	cfg config.Config,
) *api.CheckoutHandler {
	return api.NewCheckoutHandler(checkout, reconciliations, sessionGuard, cfg.Checkout)
}
