//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"travel-checkout/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalText(t *testing.T) {
	assert.False(t, pgconv.OptionalText("").Valid)
	assert.Equal(t, pgtype.Text{String: "9", Valid: true}, pgconv.OptionalText("9"))
}

func TestStringPtrFromPgtype(t *testing.T) {
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))
	got := pgconv.StringPtrFromPgtype(pgtype.Text{String: "x", Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, "x", *got)
}

func TestTimePtrFromPgtype(t *testing.T) {
	now := time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC)

	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))
	got := pgconv.TimePtrFromPgtype(pgconv.TimeToPgtype(now))
	require.NotNil(t, got)
	assert.Equal(t, now, *got)
	assert.Equal(t, now, pgconv.TimeFromPgtype(pgconv.TimeToPgtype(now)))
}
