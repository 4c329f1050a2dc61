package commands

import (
	"context"

	"travel-checkout/internal/domain/booking"
)

// Backend service ports. Every call carries the requester's bearer token;
// implementations return the server-assigned id as a string.

type BookingService interface {
	Create(ctx context.Context, token string, payload booking.CreateBookingPayload) (string, error)
	UpdateByID(ctx context.Context, token, bookingID string, payload booking.UpdateBookingPayload) error
}

type PaymentService interface {
	Create(ctx context.Context, token string, payload booking.PaymentPayload) (string, error)
}

type ItineraryService interface {
	Create(ctx context.Context, token string, payload booking.ItineraryPayload) (string, error)
}
