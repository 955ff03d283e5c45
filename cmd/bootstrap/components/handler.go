package components

import (
	"rentalhub/internal/handler"
	"rentalhub/internal/handler/api"
	"rentalhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewListingHandler,
		api.NewFavoriteHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
