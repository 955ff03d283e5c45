package components

import (
	"log/slog"

	"rentalhub/internal/infra/memory"
	"rentalhub/internal/infra/readstore"
	sqlc "rentalhub/internal/infra/sqlc/generated"
	"rentalhub/internal/infra/uow"
	"rentalhub/internal/pkg/clock"
	"rentalhub/internal/pkg/config"
	"rentalhub/internal/usecase/queries"
	"rentalhub/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

// Persistence is the storage surface the use cases depend on. Repositories are not provided
// here; the unit of work builds them per transaction.
type Persistence struct {
	fx.Out

	UnitOfWork   shared.UnitOfWork
	Listings     queries.ListingReadStore
	Reservations queries.ReservationReadStore
	Users        queries.UserReadStore
}

// NewPersistence picks the backend: a nil pool means STORAGE_DRIVER=memory.
func NewPersistence(pool *pgxpool.Pool, cfg config.Config, clk clock.Clock, logger *slog.Logger) Persistence {
	if pool == nil {
		store := memory.NewStore(clk, cfg.DB.LockTimeout)
		logger.Info("persistence backend selected", "driver", "memory")
		return Persistence{
			UnitOfWork:   memory.NewUnitOfWork(store),
			Listings:     memory.NewListingReadStore(store),
			Reservations: memory.NewReservationReadStore(store),
			Users:        memory.NewUserReadStore(store),
		}
	}

	q := sqlc.New()
	logger.Info("persistence backend selected", "driver", "postgres", "host", cfg.DB.Host, "database", cfg.DB.DBName)
	return Persistence{
		UnitOfWork:   uow.NewPostgresUoW(pool, q, cfg.DB),
		Listings:     readstore.NewListingReadStore(q, pool),
		Reservations: readstore.NewReservationReadStore(q, pool),
		Users:        readstore.NewUserReadStore(q, pool),
	}
}
