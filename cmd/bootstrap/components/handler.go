package components

import (
	"hotel-concierge/internal/handler"
	"hotel-concierge/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewConciergeHandler,
		api.NewResourceHandler,
	),
	fx.Invoke(handler.NewRouter),
)
