package components

import (
	"codevend/internal/pkg/clock"
	"codevend/internal/usecase/commands"
	"codevend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewDeliveryCommands,
		commands.NewCodeLoaderCommands,
		commands.NewProductCommands,
		commands.NewCodeAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewInventoryQueries,
		queries.NewProductQueries,
		queries.NewCodeQueries,
	),
)
