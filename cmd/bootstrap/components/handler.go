package components

import (
	"rentify-api/internal/handler"
	"rentify-api/internal/handler/api"
	"rentify-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewListingHandler,
		api.NewRentalHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
