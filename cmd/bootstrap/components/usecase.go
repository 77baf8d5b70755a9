package components

import (
	"washclub/internal/domain/code"
	"washclub/internal/domain/payout"
	"washclub/internal/pkg/clock"
	"washclub/internal/usecase"
	"washclub/internal/usecase/commands"
	"washclub/internal/usecase/queries"

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
		code.NewRandomGenerator,
		fx.As(new(code.Generator)),
	),
	fx.Annotate(
		payout.NewTieredCalculator,
		fx.As(new(payout.Calculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRedemptionCommands,
		commands.NewPayoutCommands,
		func(pc commands.PayoutCommands) commands.PayoutProcessor {
			return pc
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCodeQueries,
		queries.NewPayoutQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
