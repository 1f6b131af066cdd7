package components

import (
	"seatwise/internal/domain/seating"
	"seatwise/internal/pkg/clock"
	"seatwise/internal/pkg/config"
	"seatwise/internal/usecase/commands"
	"seatwise/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSeatingPolicy,
)

func NewSeatingPolicy(cfg config.Config) seating.Policy {
	return seating.Policy{
		AutoAssignLimit:      cfg.Seating.AutoAssignLimit,
		LargePartyThreshold:  cfg.Seating.LargePartyThreshold,
		MaxCombinationTables: cfg.Seating.MaxCombinationTables,
	}
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSeatingCommands,
		commands.NewWaitlistCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewTableQueries,
		queries.NewNotificationQueries,
		queries.NewWaitlistQueries,
	),
)
