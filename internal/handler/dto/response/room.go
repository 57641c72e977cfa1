package response

import (
	"hotel-frontdesk/internal/usecase/queries"
)

type RoomResponse struct {
	ID           int32  `json:"id"`
	Number       string `json:"number"`
	RoomTypeID   int32  `json:"roomTypeId"`
	RoomTypeName string `json:"roomTypeName"`
}

type RoomTypeResponse struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:           rm.ID,
		Number:       rm.Number,
		RoomTypeID:   rm.RoomTypeID,
		RoomTypeName: rm.RoomTypeName,
	}
}

func FromRoomViews(rms []*queries.RoomView) []*RoomResponse {
	out := make([]*RoomResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromRoomView(rm)
	}
	return out
}

func FromRoomTypeView(rm *queries.RoomTypeView) *RoomTypeResponse {
	return &RoomTypeResponse{ID: rm.ID, Name: rm.Name}
}
