//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// inserts an open entry, or a resolved one when resolved is true
func CreateTestReconciliation(t *testing.T, db DBLike, bookingID string, resolved bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	status := "open"
	var resolvedAt *time.Time
	if resolved {
		status = "resolved"
		now := time.Now().UTC()
		resolvedAt = &now
	}

	_, err := db.Exec(context.Background(), `
		INSERT INTO reconciliations
		    (id, checkout_id, user_id, booking_id, payment_id, kind, reason, status, created_at, resolved_at)
		VALUES ($1, $2, 'user-fixture', $3, 'pay-fixture', 'confirm_booking',
		        'payment captured but booking still PENDING', $4, now(), $5)`,
		id, "chk-"+id.String(), bookingID, status, resolvedAt)
	require.NoError(t, err)

	return id
}

func ReconciliationStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM reconciliations WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountReconciliations(t *testing.T, db DBLike, bookingID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM reconciliations WHERE booking_id = $1", bookingID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
