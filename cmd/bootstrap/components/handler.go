package components

import (
	"washclub/internal/handler"
	"washclub/internal/handler/api"
	"washclub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCodeHandler,
		api.NewRedemptionHandler,
		api.NewPayoutHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
