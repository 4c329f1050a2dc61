//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"travel-checkout/internal/pkg/requestid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertRequestID checks the echoed X-Request-ID. An empty want only requires
// that one was generated. The echoed id is returned.
func AssertRequestID(t *testing.T, w *httptest.ResponseRecorder, want string) string {
	t.Helper()
	got := w.Header().Get(requestid.Header)
	require.NotEmpty(t, got, "response has no %s header", requestid.Header)
	if want != "" {
		assert.Equal(t, want, got)
	}
	return got
}
