package components

import (
	"codevend/internal/infra/readstore"
	"codevend/internal/infra/repository"
	"codevend/internal/usecase/commands"
	"codevend/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
		),
		fx.Annotate(
			repository.NewCodeRepository,
			fx.As(new(commands.CodeRepository)),
		),
		// Read-side stores for queries and for the cap check
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(commands.ProductReader)),
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewDeliveryReadStore,
			fx.As(new(commands.DeliveryReader)),
		),
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.InventoryReadStore)),
		),
		fx.Annotate(
			readstore.NewCodeReadStore,
			fx.As(new(queries.CodeReadStore)),
		),
	),
)
