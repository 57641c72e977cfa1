package response

import (
	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/usecase/queries"
)

type AvailabilityResponse struct {
	StartDate civil.Date      `json:"startDate"`
	EndDate   civil.Date      `json:"endDate"`
	FreeRooms []*RoomResponse `json:"freeRooms"`
}

func NewAvailabilityResponse(start, end civil.Date, rooms []*queries.RoomView) *AvailabilityResponse {
	return &AvailabilityResponse{
		StartDate: start,
		EndDate:   end,
		FreeRooms: FromRoomViews(rooms),
	}
}
