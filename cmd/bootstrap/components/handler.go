package components

import (
	"villanest/internal/handler"
	"villanest/internal/handler/api"
	"villanest/internal/handler/middleware"
	"villanest/internal/pkg/cookie"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		cookie.NewJar,
		api.NewAuthHandler,
		api.NewVillaHandler,
		api.NewReviewHandler,
		api.NewBookingHandler,
		api.NewFavoriteHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
