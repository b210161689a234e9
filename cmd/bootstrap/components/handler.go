package components

import (
	"lendhub/internal/handler"
	"lendhub/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewPaymentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
