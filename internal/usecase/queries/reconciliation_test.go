//go:build unit

package queries_test

import (
	"context"
	"testing"

	"travel-checkout/internal/usecase/queries"
	queriesmock "travel-checkout/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReconciliationQueriesList(t *testing.T) {
	views := []*queries.ReconciliationView{{ID: uuid.New(), Status: "open"}}

	cases := []struct {
		name       string
		status     string
		limit      int
		wantStatus string
		wantLimit  int32
	}{
		{name: "defaults", status: "", limit: 0, wantStatus: "open", wantLimit: 50},
		{name: "resolved with limit", status: "resolved", limit: 10, wantStatus: "resolved", wantLimit: 10},
		{name: "limit is capped", status: "open", limit: 5000, wantStatus: "open", wantLimit: 200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockReconciliationReadStore(ctrl)
			store.EXPECT().ListByStatus(gomock.Any(), tc.wantStatus, tc.wantLimit).Return(views, nil)

			got, err := queries.NewReconciliationQueries(store).List(context.Background(), tc.status, tc.limit)

			require.NoError(t, err)
			assert.Equal(t, views, got)
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReconciliationReadStore(ctrl)

		_, err := queries.NewReconciliationQueries(store).List(context.Background(), "pending", 0)

		require.ErrorIs(t, err, queries.ErrInvalidReconciliationStatus)
	})
}
