package client

import (
	"context"
	"net/http"

	"travel-checkout/internal/domain/booking"
	"travel-checkout/internal/pkg/errs"
)

type ItineraryClient struct {
	baseClient
}

func NewItineraryClient(baseURL string, httpClient *http.Client) *ItineraryClient {
	return &ItineraryClient{baseClient: newBaseClient("itinerary", baseURL, httpClient)}
}

type itineraryResponse struct {
	ItineraryID ID `json:"itineraryId"`
	MongoID     ID `json:"_id"`
}

func (c *ItineraryClient) Create(ctx context.Context, token string, payload booking.ItineraryPayload) (string, error) {
	var resp itineraryResponse
	if err := c.doJSON(ctx, http.MethodPost, "/itineraries", token, payload, &resp); err != nil {
		return "", err
	}

	id := firstID(resp.ItineraryID, resp.MongoID)
	if id == "" {
		return "", errs.Wrap(ErrMissingID, "create itinerary")
	}
	return id, nil
}
