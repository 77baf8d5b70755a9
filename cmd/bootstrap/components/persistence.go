package components

import (
	"washclub/internal/infra/db"
	"washclub/internal/infra/readstore"
	"washclub/internal/infra/uow"
	"washclub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule wires the unit of work and the pool-backed
// readstores. Transactional repositories and readstores are created
// lazily inside the unit of work and need no providers here.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewCodeReadStore,
			fx.As(new(queries.CodeReadStore)),
		),
		fx.Annotate(
			readstore.NewPayoutReadStore,
			fx.As(new(queries.PayoutReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
