package components

import (
	"net/http"

	"travel-checkout/internal/infra/client"
	"travel-checkout/internal/pkg/config"
	"travel-checkout/internal/usecase/commands"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("client",
	fx.Provide(
		NewHTTPClient,
		fx.Annotate(
			NewBookingService,
			fx.As(new(commands.BookingService)),
		),
		fx.Annotate(
			NewPaymentService,
			fx.As(new(commands.PaymentService)),
		),
		fx.Annotate(
			NewItineraryService,
			fx.As(new(commands.ItineraryService)),
		),
	),
)

func NewHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Services.Timeout}
}

func NewBookingService(cfg config.Config, httpClient *http.Client) *client.BookingClient {
	return client.NewBookingClient(cfg.Services.BookingURL, httpClient)
}

func NewPaymentService(cfg config.Config, httpClient *http.Client) *client.PaymentClient {
	return client.NewPaymentClient(cfg.Services.PaymentURL, httpClient)
}

func NewItineraryService(cfg config.Config, httpClient *http.Client) *client.ItineraryClient {
	return client.NewItineraryClient(cfg.Services.ItineraryURL, httpClient)
}
