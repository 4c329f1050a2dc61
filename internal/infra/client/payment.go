package client

import (
	"context"
	"net/http"

	"travel-checkout/internal/domain/booking"
	"travel-checkout/internal/pkg/errs"
)

type PaymentClient struct {
	baseClient
}

func NewPaymentClient(baseURL string, httpClient *http.Client) *PaymentClient {
	return &PaymentClient{baseClient: newBaseClient("payment", baseURL, httpClient)}
}

type paymentResponse struct {
	PaymentRef *struct {
		PaymentID ID `json:"paymentId"`
	} `json:"paymentRef"`
	PaymentID ID `json:"paymentId"`
	MongoID   ID `json:"_id"`
}

func (r paymentResponse) id() string {
	var nested ID
	if r.PaymentRef != nil {
		nested = r.PaymentRef.PaymentID
	}
	return firstID(nested, r.PaymentID, r.MongoID)
}

// Create records a payment and returns its id, read from paymentRef.paymentId,
// paymentId or _id in that order.
func (c *PaymentClient) Create(ctx context.Context, token string, payload booking.PaymentPayload) (string, error) {
	var resp paymentResponse
	if err := c.doJSON(ctx, http.MethodPost, "/payments", token, payload, &resp); err != nil {
		return "", err
	}

	id := resp.id()
	if id == "" {
		return "", errs.Wrap(ErrMissingID, "create payment")
	}
	return id, nil
}
