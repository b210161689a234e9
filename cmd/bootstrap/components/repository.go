package components

import (
	"lendhub/internal/infra/repository"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewTransactionRepository,
			fx.As(new(commands.TransactionRepository)),
		),
		fx.Annotate(
			repository.NewPartyRepository,
			fx.As(new(commands.PartyRepository)),
		),
		// Read-side store for queries
		fx.Annotate(
			repository.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)
