package room

import (
	"errors"
	"strings"
)

// RoomNumber is the printed door number, at most 6 characters, unique
// among active rooms.
const MaxRoomNumberLength = 6

var (
	ErrEmptyRoomNumber   = errors.New("room number cannot be empty")
	ErrRoomNumberTooLong = errors.New("room number cannot exceed 6 characters")
)

type RoomNumber struct {
	value string
}

func NewRoomNumber(value string) (RoomNumber, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return RoomNumber{}, ErrEmptyRoomNumber
	}
	if len(trimmed) > MaxRoomNumberLength {
		return RoomNumber{}, ErrRoomNumberTooLong
	}
	return RoomNumber{value: trimmed}, nil
}

func (n RoomNumber) String() string {
	return n.value
}
