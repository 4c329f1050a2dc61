package commands

import (
	"context"
	"time"

	"travel-checkout/internal/infra"
	"travel-checkout/internal/pkg/clock"
	"travel-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReconciliationNotNeeded  = errs.New("checkout does not need reconciliation")
	ErrReconciliationNotFound   = errs.New("reconciliation not found")
	ErrReconciliationSaveFailed = errs.New("reconciliation could not be saved")
)

const (
	ReconciliationOpen     = "open"
	ReconciliationResolved = "resolved"
)

// ReconciliationRecord is an ops follow-up for a checkout whose server-side
// state may be inconsistent.
type ReconciliationRecord struct {
	ID          uuid.UUID
	CheckoutID  string
	UserID      string
	BookingID   string
	PaymentID   string
	ItineraryID string
	Kind        string
	Reason      string
	CreatedAt   time.Time
}

type ReconciliationRepository interface {
	Create(ctx context.Context, record ReconciliationRecord) error
	// Resolve returns an infra.KindNotFound error when no open entry has the id.
	Resolve(ctx context.Context, id uuid.UUID, resolvedAt time.Time) error
}

type ReconciliationCommands interface {
	Record(ctx context.Context, userID string, checkoutErr *CheckoutError) (uuid.UUID, error)
	Resolve(ctx context.Context, id uuid.UUID) error
}

type reconciliationUseCaseImpl struct {
	repo  ReconciliationRepository
	clock clock.Clock
}

func NewReconciliationUseCase(repo ReconciliationRepository, clk clock.Clock) ReconciliationCommands {
	return &reconciliationUseCaseImpl{repo: repo, clock: clk}
}

func (uc *reconciliationUseCaseImpl) Record(ctx context.Context, userID string, checkoutErr *CheckoutError) (uuid.UUID, error) {
	if checkoutErr == nil || !checkoutErr.NeedsReview() {
		return uuid.Nil, ErrReconciliationNotNeeded
	}

	record := ReconciliationRecord{
		ID:          uuid.New(),
		CheckoutID:  checkoutErr.CheckoutID,
		UserID:      userID,
		BookingID:   checkoutErr.BookingID,
		PaymentID:   checkoutErr.PaymentID,
		ItineraryID: checkoutErr.ItineraryID,
		Kind:        checkoutErr.Step.String(),
		Reason:      checkoutErr.ReviewReason(),
		CreatedAt:   uc.clock.Now(),
	}
	if err := uc.repo.Create(ctx, record); err != nil {
		return uuid.Nil, errs.Mark(err, ErrReconciliationSaveFailed)
	}
	return record.ID, nil
}

func (uc *reconciliationUseCaseImpl) Resolve(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Resolve(ctx, id, uc.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReconciliationNotFound
		}
		return err
	}
	return nil
}
