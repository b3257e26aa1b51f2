package components

import (
	repo_impl "procure-chef/internal/infra/repository"
	"procure-chef/internal/usecase/commands"
	"procure-chef/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewRequestRepository,
			fx.As(new(commands.RequestRepository)),
			fx.As(new(queries.RequestReader)),
		),
		fx.Annotate(
			repo_impl.NewQuoteRepository,
			fx.As(new(commands.QuoteRepository)),
			fx.As(new(queries.QuoteReader)),
		),
		fx.Annotate(
			repo_impl.NewOfferingRepository,
			fx.As(new(queries.OfferingReader)),
		),
	),
)
