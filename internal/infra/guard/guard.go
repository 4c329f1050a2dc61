package guard

import (
	"context"

	"travel-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCheckoutInFlight = errs.New("checkout already in progress")
	ErrEmptyKey         = errs.New("empty checkout session key")
)

// ReleaseFunc ends a guarded section. It is safe to call more than once.
type ReleaseFunc func()

// SessionGuard admits at most one in-flight checkout per session key.
type SessionGuard interface {
	Acquire(ctx context.Context, key string) (ReleaseFunc, error)
}

func newToken() string {
	return uuid.NewString()
}
