package client

import (
	"context"
	"net/http"
	"net/url"

	"travel-checkout/internal/domain/booking"
	"travel-checkout/internal/pkg/errs"
)

type BookingClient struct {
	baseClient
}

func NewBookingClient(baseURL string, httpClient *http.Client) *BookingClient {
	return &BookingClient{baseClient: newBaseClient("booking", baseURL, httpClient)}
}

type bookingResponse struct {
	BookingID ID `json:"bookingId"`
	MongoID   ID `json:"_id"`
	ID        ID `json:"id"`
}

// Create posts a new booking and returns its id.
func (c *BookingClient) Create(ctx context.Context, token string, payload booking.CreateBookingPayload) (string, error) {
	var resp bookingResponse
	if err := c.doJSON(ctx, http.MethodPost, "/bookings", token, payload, &resp); err != nil {
		return "", err
	}

	id := firstID(resp.BookingID, resp.MongoID, resp.ID)
	if id == "" {
		return "", errs.Wrap(ErrMissingID, "create booking")
	}
	return id, nil
}

// UpdateByID replaces the status (and references) of an existing booking.
// The response body is not interpreted.
func (c *BookingClient) UpdateByID(ctx context.Context, token, bookingID string, payload booking.UpdateBookingPayload) error {
	return c.doJSON(ctx, http.MethodPut, "/bookings/"+url.PathEscape(bookingID), token, payload, nil)
}
