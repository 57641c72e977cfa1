package request

import (
	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/usecase/commands"

	"github.com/google/uuid"
)

// Dates deliberately carry no binding tag: zero dates flow to the usecase
// layer so field-level validation happens in one place and in one order.
type CreateReservationRequest struct {
	HolderID      uuid.UUID  `json:"holder_id" binding:"required"`
	ArrivalDate   civil.Date `json:"arrival_date"`
	DepartureDate civil.Date `json:"departure_date"`
	RoomTypeID    int32      `json:"room_type_id" binding:"required"`
	RoomID        int32      `json:"room_id" binding:"required"`
	Adults        int        `json:"adults"`
	Teenagers     int        `json:"teenagers"`
	Children      int        `json:"children"`
}

func (r CreateReservationRequest) ToParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		HolderID:      r.HolderID,
		ArrivalDate:   r.ArrivalDate,
		DepartureDate: r.DepartureDate,
		RoomTypeID:    r.RoomTypeID,
		RoomID:        r.RoomID,
		Adults:        r.Adults,
		Teenagers:     r.Teenagers,
		Children:      r.Children,
	}
}

type SetReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
