package components

import (
	"travel-checkout/internal/infra/readstore"
	"travel-checkout/internal/infra/repository"
	sqlc "travel-checkout/internal/infra/sqlc/generated"
	"travel-checkout/internal/usecase/commands"
	"travel-checkout/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Reconciliation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReconciliationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReconciliationReadStore,
			fx.As(new(queries.ReconciliationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Reconciliation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ReconciliationWriteQueries)),
		),
		fx.Annotate(
			repository.NewReconciliationRepository,
			fx.As(new(commands.ReconciliationRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
