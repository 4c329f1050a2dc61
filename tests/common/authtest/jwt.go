//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"travel-checkout/internal/pkg/config"
	"travel-checkout/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

const (
	RoleCustomer = "customer"
	RoleOps      = "ops"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret).GenerateToken(userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret).GenerateToken(userID, role, -time.Minute)
	require.NoError(t, err)
	return token
}
