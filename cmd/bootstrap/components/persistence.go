package components

import (
	"rentify-api/internal/infra/readstore"
	"rentify-api/internal/infra/repository"
	sqlc "rentify-api/internal/infra/sqlc/generated"
	"rentify-api/internal/infra/uow"
	"rentify-api/internal/usecase/queries"
	"rentify-api/internal/usecase/shared"

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
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Listing
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingReadStore)),
		),
		// Rental
		fx.Annotate(
			readstore.NewRentalReadStore,
			fx.As(new(queries.RentalReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork (builds its transactional repositories itself)
		uow.NewPostgresUoW,
		// User
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(shared.UserRepository)),
		),
		// Listing
		fx.Annotate(
			repository.NewListingRepository,
			fx.As(new(shared.ListingRepository)),
		),
		// Rental
		fx.Annotate(
			repository.NewRentalRepository,
			fx.As(new(shared.RentalRepository)),
		),
		// Idempotency
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(shared.IdempotencyRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
