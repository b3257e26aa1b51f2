package components

import (
	"context"
	"log/slog"

	"procure-chef/internal/domain/quote"
	"procure-chef/internal/pkg/clock"
	"procure-chef/internal/pkg/config"
	"procure-chef/internal/pkg/optimistic"
	"procure-chef/internal/usecase/commands"
	"procure-chef/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	fx.Invoke(hydrateRequestCollection),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) (quote.ValidityPolicy, error) {
		return quote.NewValidityPolicy(cfg.Quote.Validity, cfg.Quote.BundledValidity)
	},
	quote.NewGenerator,
	quote.NewBundler,
	optimistic.NewStore[uuid.UUID, *queries.RequestView],
	func(store *optimistic.Store[uuid.UUID, *queries.RequestView], logger *slog.Logger) *optimistic.Coordinator[uuid.UUID, *queries.RequestView] {
		return optimistic.NewCoordinator(store, logger)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRequestCommands,
		commands.NewQuoteCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRequestQueries,
		queries.NewQuoteQueries,
		queries.NewOfferingQueries,
	),
)

// hydrateRequestCollection fills the optimistic collection from the database
// before the server starts accepting traffic.
func hydrateRequestCollection(lc fx.Lifecycle, cmds commands.RequestCommands) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return cmds.Hydrate(ctx)
		},
	})
}
