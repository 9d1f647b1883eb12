package components

import (
	"rentify-api/internal/domain/rental"
	"rentify-api/internal/pkg/clock"
	"rentify-api/internal/usecase"
	"rentify-api/internal/usecase/commands"
	"rentify-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		rental.NewDefaultPriceCalculator,
		fx.As(new(rental.PriceCalculator)),
	),
	rental.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewIdempotentGateway,
		commands.NewAuthCommands,
		commands.NewListingCommands,
		commands.NewRentalCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewListingQueries,
		queries.NewRentalQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
