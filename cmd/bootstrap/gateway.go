package bootstrap

import (
	"lendhub/internal/infra/gateway"
	"lendhub/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			gateway.NewClient,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)
