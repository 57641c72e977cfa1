package room

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyTypeName  = errors.New("room type name cannot be empty")
	ErrInvalidTypeRef = errors.New("room must reference a room type")
	ErrAlreadyRetired = errors.New("room is already retired")
)

// RoomType is immutable reference data: a display name for a class of
// rooms ("Single", "Double Deluxe"). Never deleted while rooms reference it.
type RoomType struct {
	id   int32
	name string
}

func NewRoomType(name string) (*RoomType, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyTypeName
	}
	return &RoomType{name: trimmed}, nil
}

func ReconstructRoomType(id int32, name string) *RoomType {
	return &RoomType{id: id, name: name}
}

func (rt *RoomType) ID() int32    { return rt.id }
func (rt *RoomType) Name() string { return rt.name }

// Room is a physical, bookable room. Rooms are soft-retired, never
// physically removed, because night-ledger history references them.
type Room struct {
	id         int32
	number     RoomNumber
	roomTypeID int32
	deletedAt  *time.Time
}

func NewRoom(number RoomNumber, roomTypeID int32) (*Room, error) {
	if roomTypeID <= 0 {
		return nil, ErrInvalidTypeRef
	}
	return &Room{
		number:     number,
		roomTypeID: roomTypeID,
	}, nil
}

func ReconstructRoom(id int32, number RoomNumber, roomTypeID int32, deletedAt *time.Time) *Room {
	return &Room{
		id:         id,
		number:     number,
		roomTypeID: roomTypeID,
		deletedAt:  deletedAt,
	}
}

func (r *Room) ID() int32          { return r.id }
func (r *Room) Number() RoomNumber { return r.number }
func (r *Room) RoomTypeID() int32  { return r.roomTypeID }

func (r *Room) IsRetired() bool { return r.deletedAt != nil }

func (r *Room) Retire(now time.Time) error {
	if r.deletedAt != nil {
		return ErrAlreadyRetired
	}
	r.deletedAt = &now
	return nil
}
