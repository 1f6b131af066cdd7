package components

import (
	"seatwise/internal/infra"
	"seatwise/internal/infra/mailer"
	"seatwise/internal/infra/readstore"
	"seatwise/internal/infra/uow"
	"seatwise/internal/pkg/config"
	"seatwise/internal/usecase/commands"
	"seatwise/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		NewSMTPMailer,
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewTableReadStore,
			fx.As(new(queries.TableReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		fx.Annotate(
			readstore.NewWaitlistReadStore,
			fx.As(new(queries.WaitlistReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}

func NewSMTPMailer(cfg config.Config) commands.LargePartyMailer {
	return mailer.NewSMTPMailer(cfg.SMTP)
}
