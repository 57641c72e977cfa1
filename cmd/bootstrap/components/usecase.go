package components

import (
	"hotel-frontdesk/internal/domain/guest"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func() *guest.NationalityDirectory {
		return guest.NewNationalityDirectory(guest.DefaultNationalities())
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewFrontDeskQueries,
		queries.NewReservationQueries,
		queries.NewRoomQueries,
		queries.NewGuestQueries,
		queries.NewStaffQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewRoomCommands,
		commands.NewGuestCommands,
	),
)
