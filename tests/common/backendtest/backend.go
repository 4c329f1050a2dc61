//go:build unit || e2e

package backendtest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"travel-checkout/internal/pkg/requestid"

	"github.com/gin-gonic/gin"
)

// Call is one request received by the fake backend.
type Call struct {
	Method    string
	Path      string
	Auth      string
	RequestID string
	Body      map[string]any
}

type failure struct {
	status  int
	message string
}

// Backend serves the booking, payment and itinerary endpoints from one
// httptest server. Routes can be switched to fail per method and route.
type Backend struct {
	Server *httptest.Server

	mu       sync.Mutex
	calls    []Call
	failures map[string]failure
	seq      int
}

func NewBackend(t *testing.T) *Backend {
	t.Helper()
	gin.SetMode(gin.TestMode)

	b := &Backend{failures: make(map[string]failure)}

	engine := gin.New()
	engine.POST("/bookings", b.handle("POST /bookings", func(id string) any {
		return gin.H{"bookingId": id}
	}))
	engine.PUT("/bookings/:id", b.handle("PUT /bookings/:id", func(string) any {
		return gin.H{"ok": true}
	}))
	engine.POST("/payments", b.handle("POST /payments", func(id string) any {
		return gin.H{"paymentRef": gin.H{"paymentId": id}}
	}))
	engine.POST("/itineraries", b.handle("POST /itineraries", func(id string) any {
		return gin.H{"_id": id}
	}))

	b.Server = httptest.NewServer(engine)
	t.Cleanup(b.Server.Close)
	return b
}

func (b *Backend) URL() string {
	return b.Server.URL
}

// Fail makes route ("POST /payments", "PUT /bookings/:id", ...) answer with status.
func (b *Backend) Fail(route string, status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[route] = failure{status: status, message: message}
}

func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = nil
	b.failures = make(map[string]failure)
}

func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

func (b *Backend) CallsTo(method, pathPrefix string) []Call {
	var out []Call
	for _, c := range b.Calls() {
		if c.Method == method && strings.HasPrefix(c.Path, pathPrefix) {
			out = append(out, c)
		}
	}
	return out
}

func (b *Backend) handle(route string, ok func(id string) any) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		_ = c.ShouldBindJSON(&body)

		b.mu.Lock()
		b.calls = append(b.calls, Call{
			Method: c.Request.Method,
			Path:   c.Request.URL.Path,
			Auth:      c.GetHeader("Authorization"),
			RequestID: c.GetHeader(requestid.Header),
			Body:      body,
		})
		f, failing := b.failures[route]
		b.seq++
		id := fmt.Sprintf("fake-%d", b.seq)
		b.mu.Unlock()

		if failing {
			c.JSON(f.status, gin.H{"message": f.message})
			return
		}
		c.JSON(http.StatusOK, ok(id))
	}
}
