package components

import (
	"codevend/internal/handler"
	"codevend/internal/handler/api"
	"codevend/internal/handler/middleware"
	"codevend/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDeliveryHandler,
		api.NewInventoryHandler,
		api.NewCodeHandler,
		api.NewProductHandler,
		func(cfg config.Config) *middleware.SecretAuthMiddleware {
			return middleware.NewSecretAuthMiddleware(cfg.API)
		},
	),
	fx.Invoke(handler.NewRouter),
)
