package bootstrap

import (
	"context"
	"log/slog"

	"travel-checkout/internal/infra/db"
	"travel-checkout/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool backing the reconciliation store.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	slog.Info("Connected to reconciliation database", "host", cfg.DB.Host, "database", cfg.DB.DBName)

	lc.Append(fx.StopHook(closePool))
	return pool, nil
}
