package components

import (
	"hotel-frontdesk/internal/handler"
	"hotel-frontdesk/internal/handler/api"
	"hotel-frontdesk/internal/handler/middleware"
	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/pkg/jwt"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		newAuthHandler,
		api.NewReservationHandler,
		api.NewAvailabilityHandler,
		api.NewFrontDeskHandler,
		api.NewRoomHandler,
		api.NewGuestHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newAuthHandler(auth commands.AuthCommands, staff queries.StaffQueries, tokens *jwt.Service, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(auth, staff, tokens, cfg.Cookie)
}

func newHandlers(
	auth *api.AuthHandler,
	reservation *api.ReservationHandler,
	availability *api.AvailabilityHandler,
	frontDesk *api.FrontDeskHandler,
	room *api.RoomHandler,
	guest *api.GuestHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Reservation:  reservation,
		Availability: availability,
		FrontDesk:    frontDesk,
		Room:         room,
		Guest:        guest,
	}
}
