package components

import (
	"camp-pricing/internal/handler"
	"camp-pricing/internal/handler/api"
	"camp-pricing/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewSlotHandler,
		api.NewRuleHandler,
		api.NewPricingConfigHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
