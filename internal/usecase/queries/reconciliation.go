package queries

import (
	"context"
	"time"

	"travel-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidReconciliationStatus = errs.New("invalid reconciliation status")

const (
	defaultReconciliationLimit = 50
	maxReconciliationLimit     = 200
)

// ReconciliationView represents read-optimized reconciliation data
type ReconciliationView struct {
	ID          uuid.UUID  `json:"id"`
	CheckoutID  string     `json:"checkout_id"`
	UserID      string     `json:"user_id"`
	BookingID   string     `json:"booking_id"`
	PaymentID   *string    `json:"payment_id,omitempty"`
	ItineraryID *string    `json:"itinerary_id,omitempty"`
	Kind        string     `json:"kind"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

type ReconciliationQueries interface {
	List(ctx context.Context, status string, limit int) ([]*ReconciliationView, error)
}

type ReconciliationReadStore interface {
	ListByStatus(ctx context.Context, status string, limit int32) ([]*ReconciliationView, error)
}

type reconciliationQueriesImpl struct {
	readStore ReconciliationReadStore
}

func NewReconciliationQueries(readStore ReconciliationReadStore) ReconciliationQueries {
	return &reconciliationQueriesImpl{
		readStore: readStore,
	}
}

// List returns entries newest first. An empty status means "open".
func (q *reconciliationQueriesImpl) List(ctx context.Context, status string, limit int) ([]*ReconciliationView, error) {
	switch status {
	case "":
		status = "open"
	case "open", "resolved":
	default:
		return nil, ErrInvalidReconciliationStatus
	}

	if limit <= 0 {
		limit = defaultReconciliationLimit
	}
	if limit > maxReconciliationLimit {
		limit = maxReconciliationLimit
	}

	return q.readStore.ListByStatus(ctx, status, int32(limit))
}
