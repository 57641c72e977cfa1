package components

import (
	"hotel-frontdesk/internal/infra/readstore"
	"hotel-frontdesk/internal/infra/repository"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Room
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
			fx.As(new(queries.RoomCatalogReadStore)),
			fx.As(new(commands.RoomCommandReads)),
		),
		// Night ledger
		fx.Annotate(
			readstore.NewNightReadStore,
			fx.As(new(queries.NightReadStore)),
		),
		// Reservation
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(queries.FrontDeskReadStore)),
			fx.As(new(commands.ReservationCommandReads)),
		),
		// Guest
		fx.Annotate(
			readstore.NewGuestReadStore,
			fx.As(new(queries.GuestReadStore)),
			fx.As(new(commands.GuestCommandReads)),
		),
		// Staff
		fx.Annotate(
			readstore.NewStaffReadStore,
			fx.As(new(queries.StaffReadStore)),
			fx.As(new(commands.StaffCommandReads)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewNightLedgerRepository,
			fx.As(new(commands.NightLedgerRepository)),
		),
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(commands.RoomRepository)),
		),
		fx.Annotate(
			repository.NewGuestRepository,
			fx.As(new(commands.GuestRepository)),
		),
		fx.Annotate(
			repository.NewStaffRepository,
			fx.As(new(commands.StaffRepository)),
		),
	),
)
