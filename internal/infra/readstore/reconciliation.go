package readstore

import (
	"context"

	"travel-checkout/internal/infra"
	sqlc "travel-checkout/internal/infra/sqlc/generated"
	"travel-checkout/internal/pkg/pgconv"
	"travel-checkout/internal/usecase/queries"
)

type ReconciliationReadQueries interface {
	ListReconciliationsByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReconciliationsByStatusParams) ([]sqlc.Reconciliations, error)
}

type ReconciliationReadStore struct {
	queries ReconciliationReadQueries
	db      sqlc.DBTX
}

func NewReconciliationReadStore(queries ReconciliationReadQueries, db sqlc.DBTX) *ReconciliationReadStore {
	return &ReconciliationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReconciliationReadStore) ListByStatus(ctx context.Context, status string, limit int32) ([]*queries.ReconciliationView, error) {
	rows, err := r.queries.ListReconciliationsByStatus(ctx, r.db, sqlc.ListReconciliationsByStatusParams{
		Status: status,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reconciliations", err)
	}

	views := make([]*queries.ReconciliationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toReconciliationView(row))
	}
	return views, nil
}

func toReconciliationView(row sqlc.Reconciliations) *queries.ReconciliationView {
	return &queries.ReconciliationView{
		ID:          row.ID,
		CheckoutID:  row.CheckoutID,
		UserID:      row.UserID,
		BookingID:   row.BookingID,
		PaymentID:   pgconv.StringPtrFromPgtype(row.PaymentID),
		ItineraryID: pgconv.StringPtrFromPgtype(row.ItineraryID),
		Kind:        row.Kind,
		Reason:      row.Reason,
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		ResolvedAt:  pgconv.TimePtrFromPgtype(row.ResolvedAt),
	}
}
