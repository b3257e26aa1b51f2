package components

import (
	"procure-chef/internal/handler"
	"procure-chef/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRequestHandler,
		api.NewQuoteHandler,
		api.NewOfferingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
