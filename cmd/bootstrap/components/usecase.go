package components

import (
	"time"

	"hotel-concierge/internal/domain/quote"
	"hotel-concierge/internal/pkg/clock"
	"hotel-concierge/internal/usecase/commands"
	"hotel-concierge/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func() quote.PricePolicy {
		return quote.NewRandomPricePolicy(time.Now().UnixNano())
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewConciergeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
	),
)
