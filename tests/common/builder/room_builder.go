//go:build unit || e2e

package builder

import (
	reqdto "hotel-frontdesk/internal/handler/dto/request"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"
)

type RoomBuilder struct {
	ID           int32
	Number       string
	RoomTypeID   int32
	RoomTypeName string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:           101,
		Number:       "101",
		RoomTypeID:   1,
		RoomTypeName: "Standard Double",
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:           b.ID,
		Number:       b.Number,
		RoomTypeID:   b.RoomTypeID,
		RoomTypeName: b.RoomTypeName,
	}
}

func (b *RoomBuilder) BuildTypeView() *queries.RoomTypeView {
	return &queries.RoomTypeView{
		ID:   b.RoomTypeID,
		Name: b.RoomTypeName,
	}
}

func (b *RoomBuilder) BuildSnapshot() *commands.RoomSnapshot {
	return &commands.RoomSnapshot{
		ID:         b.ID,
		Number:     b.Number,
		RoomTypeID: b.RoomTypeID,
	}
}

func (b *RoomBuilder) BuildTypeSnapshot() *commands.RoomTypeSnapshot {
	return &commands.RoomTypeSnapshot{
		ID:   b.RoomTypeID,
		Name: b.RoomTypeName,
	}
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Number:     b.Number,
		RoomTypeID: b.RoomTypeID,
	}
}

func (b *RoomBuilder) BuildCreateTypeRequestDTO() reqdto.CreateRoomTypeRequest {
	return reqdto.CreateRoomTypeRequest{
		Name: b.RoomTypeName,
	}
}
