package repository

import (
	"context"
	"time"

	"travel-checkout/internal/infra"
	sqlc "travel-checkout/internal/infra/sqlc/generated"
	"travel-checkout/internal/pkg/pgconv"
	"travel-checkout/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReconciliationWriteQueries interface {
	CreateReconciliation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReconciliationParams) error
	ResolveReconciliation(ctx context.Context, db sqlc.DBTX, arg sqlc.ResolveReconciliationParams) (int64, error)
}

type ReconciliationRepository struct {
	queries ReconciliationWriteQueries
	db      sqlc.DBTX
}

func NewReconciliationRepository(queries ReconciliationWriteQueries, db sqlc.DBTX) *ReconciliationRepository {
	return &ReconciliationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReconciliationRepository) Create(ctx context.Context, record commands.ReconciliationRecord) error {
	params := sqlc.CreateReconciliationParams{
		ID:          record.ID,
		CheckoutID:  record.CheckoutID,
		UserID:      record.UserID,
		BookingID:   record.BookingID,
		PaymentID:   pgconv.OptionalText(record.PaymentID),
		ItineraryID: pgconv.OptionalText(record.ItineraryID),
		Kind:        record.Kind,
		Reason:      record.Reason,
		CreatedAt:   pgconv.TimeToPgtype(record.CreatedAt),
	}

	if err := r.queries.CreateReconciliation(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create reconciliation", err)
	}
	return nil
}

func (r *ReconciliationRepository) Resolve(ctx context.Context, id uuid.UUID, resolvedAt time.Time) error {
	affected, err := r.queries.ResolveReconciliation(ctx, r.db, sqlc.ResolveReconciliationParams{
		ID:         id,
		ResolvedAt: pgconv.TimeToPgtype(resolvedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to resolve reconciliation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("open reconciliation not found", nil, infra.KindNotFound)
	}
	return nil
}
