package response

import (
	"travel-checkout/internal/usecase/commands"
)

type CheckoutResponse struct {
	CheckoutID  string   `json:"checkoutId"`
	BookingID   string   `json:"bookingId"`
	PaymentID   string   `json:"paymentId"`
	ItineraryID string   `json:"itineraryId,omitempty"`
	Type        string   `json:"type"`
	TotalAmount float64  `json:"totalAmount"`
	Status      string   `json:"status"`
	Stages      []string `json:"stages"`
}

// CheckoutFailureDetail is attached to every failed checkout response.
type CheckoutFailureDetail struct {
	CheckoutID       string `json:"checkoutId"`
	Step             string `json:"step"`
	BookingID        string `json:"bookingId,omitempty"`
	PaymentID        string `json:"paymentId,omitempty"`
	ItineraryID      string `json:"itineraryId,omitempty"`
	NeedsReview      bool   `json:"needsReview"`
	ReconciliationID string `json:"reconciliationId,omitempty"`
}

func FromSubmitBookingResult(result *commands.SubmitBookingResult) *CheckoutResponse {
	stages := make([]string, 0, len(result.Stages))
	for _, stage := range result.Stages {
		stages = append(stages, string(stage))
	}
	return &CheckoutResponse{
		CheckoutID:  result.CheckoutID,
		BookingID:   result.BookingID,
		PaymentID:   result.PaymentID,
		ItineraryID: result.ItineraryID,
		Type:        result.Type.String(),
		TotalAmount: result.TotalAmount.Amount(),
		Status:      string(result.Status),
		Stages:      stages,
	}
}

func FromCheckoutError(checkoutErr *commands.CheckoutError) *CheckoutFailureDetail {
	return &CheckoutFailureDetail{
		CheckoutID:  checkoutErr.CheckoutID,
		Step:        checkoutErr.Step.String(),
		BookingID:   checkoutErr.BookingID,
		PaymentID:   checkoutErr.PaymentID,
		ItineraryID: checkoutErr.ItineraryID,
		NeedsReview: checkoutErr.NeedsReview(),
	}
}
