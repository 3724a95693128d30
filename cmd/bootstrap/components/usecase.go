package components

import (
	"camp-pricing/internal/pkg/clock"
	"camp-pricing/internal/usecase"
	"camp-pricing/internal/usecase/commands"
	"camp-pricing/internal/usecase/ledger"
	"camp-pricing/internal/usecase/queries"
	"camp-pricing/internal/usecase/quote"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseQuoteModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	ledger.NewLedger,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRuleCommands,
		commands.NewConfigCommands,
		commands.NewSlotCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRuleQueries,
		queries.NewConfigQueries,
		queries.NewSlotQueries,
	),
)

var usecaseQuoteModule = fx.Module("usecase/quote",
	fx.Provide(
		// ledger reads are the surge occupancy source
		func(l *ledger.Ledger) quote.OccupancySource { return l },
		fx.Annotate(
			quote.NewSurgeEvaluator,
			fx.As(fx.Self()),
			fx.As(new(commands.OccupancyMemo)),
		),
		quote.NewService,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
