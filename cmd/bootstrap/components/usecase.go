package components

import (
	"property-rental/internal/domain/reservation"
	"property-rental/internal/pkg/clock"
	"property-rental/internal/pkg/config"
	"property-rental/internal/usecase/commands"
	"property-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	fx.Annotate(
		reservation.NewNightlyPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCommissionGenerator,
		commands.NewReservationCommands,
		commands.NewPropertyCommands,
		commands.NewOwnerCommands,
		commands.NewHostCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		fx.Annotate(
			queries.NewOwnerQueries,
			fx.ParamTags(`name:"owners"`),
		),
		fx.Annotate(
			queries.NewHostQueries,
			fx.ParamTags(`name:"hosts"`),
		),
		queries.NewPropertyQueries,
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
		queries.NewFinancialQueries,
	),
)

// NewClock evaluates "today" in the business calendar, not the server's.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClock(loc), nil
}
