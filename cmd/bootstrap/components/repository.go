package components

import (
	"giveledger/internal/infra/db"
	"giveledger/internal/infra/readstore"
	repo_impl "giveledger/internal/infra/repository"
	"giveledger/internal/infra/stripegw"
	"giveledger/internal/usecase/commands"
	"giveledger/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewQueryer,
		fx.Annotate(
			repo_impl.NewDonationRepository,
			fx.As(new(commands.DonationRepository)),
		),
		fx.Annotate(
			repo_impl.NewCouponRepository,
			fx.As(new(commands.CouponRepository)),
		),
		fx.Annotate(
			stripegw.NewFeeSource,
			fx.As(new(commands.FeeSource)),
		),
		// Read-side store for queries
		fx.Annotate(
			readstore.NewDonationReadStore,
			fx.As(new(queries.DonationReadStore)),
		),
	),
)

func NewQueryer(pool *pgxpool.Pool) db.Queryer {
	return pool
}
