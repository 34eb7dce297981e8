package components

import (
	"property-rental/internal/infra/readstore"
	sqlc "property-rental/internal/infra/sqlc/generated"
	"property-rental/internal/infra/uow"
	"property-rental/internal/usecase/queries"
	"property-rental/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Owner
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OwnerViewQueries)),
		),
		fx.Annotate(
			readstore.NewOwnerReadStore,
			fx.As(new(queries.ContactReadStore)),
			fx.ResultTags(`name:"owners"`),
		),
		// Host
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.HostViewQueries)),
		),
		fx.Annotate(
			readstore.NewHostReadStore,
			fx.As(new(queries.ContactReadStore)),
			fx.ResultTags(`name:"hosts"`),
		),
		// Property
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PropertyViewQueries)),
		),
		fx.Annotate(
			readstore.NewPropertyReadStore,
			fx.As(new(queries.PropertyReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(queries.OverlapReader)),
		),
		// Financial
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.FinancialViewQueries)),
		),
		fx.Annotate(
			readstore.NewFinancialReadStore,
			fx.As(new(queries.FinancialReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
			fx.As(new(queries.ReadOnlyRunner)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
