package bootstrap

import (
	"context"
	"log/slog"

	"travel-checkout/internal/infra/events"
	"travel-checkout/internal/pkg/config"

	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		NewProgressPublisher,
	),
)

// NewProgressPublisher returns nil when AMQP_URL is unset.
func NewProgressPublisher(lc fx.Lifecycle, cfg config.Config) (*events.Publisher, error) {
	if !cfg.AMQP.Enabled() {
		return nil, nil
	}

	publisher, err := events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Queue, cfg.AMQP.PublishTimeout)
	if err != nil {
		return nil, err
	}
	slog.Info("Publishing checkout progress", "queue", cfg.AMQP.Queue)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
