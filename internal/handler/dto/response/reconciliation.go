package response

import (
	"time"

	"travel-checkout/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReconciliationResponse struct {
	ID          uuid.UUID  `json:"id"`
	CheckoutID  string     `json:"checkoutId"`
	UserID      string     `json:"userId"`
	BookingID   string     `json:"bookingId"`
	PaymentID   *string    `json:"paymentId,omitempty"`
	ItineraryID *string    `json:"itineraryId,omitempty"`
	Kind        string     `json:"kind"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
}

type ReconciliationListResponse struct {
	Items []*ReconciliationResponse `json:"items"`
	Count int                       `json:"count"`
}

func FromReconciliationViews(views []*queries.ReconciliationView) (*ReconciliationListResponse, error) {
	items := make([]*ReconciliationResponse, 0, len(views))
	if err := copier.Copy(&items, views); err != nil {
		return nil, err
	}
	if items == nil {
		items = []*ReconciliationResponse{}
	}
	return &ReconciliationListResponse{Items: items, Count: len(items)}, nil
}
