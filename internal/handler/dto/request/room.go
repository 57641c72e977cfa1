package request

type CreateRoomTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateRoomRequest struct {
	Number     string `json:"number" binding:"required"`
	RoomTypeID int32  `json:"room_type_id" binding:"required"`
}
