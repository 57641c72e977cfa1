package queries

import (
	"time"

	"hotel-frontdesk/internal/pkg/civil"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type RoomTypeView struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type RoomView struct {
	ID           int32  `json:"id"`
	Number       string `json:"number"`
	RoomTypeID   int32  `json:"room_type_id"`
	RoomTypeName string `json:"room_type_name"`
}

type GuestView struct {
	ID              uuid.UUID  `json:"id"`
	FirstName       string     `json:"first_name"`
	MiddleName      *string    `json:"middle_name,omitempty"`
	LastName        string     `json:"last_name"`
	Birthdate       *civil.Date `json:"birthdate,omitempty"`
	Gender          string     `json:"gender"`
	Nationality     string     `json:"nationality"`
	NationalityCode string     `json:"nationality_code"`
	Address         *string    `json:"address,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ReservationView struct {
	ID            uuid.UUID  `json:"id"`
	HolderID      uuid.UUID  `json:"holder_id"`
	HolderName    string     `json:"holder_name"`
	ArrivalDate   civil.Date `json:"arrival_date"`
	DepartureDate civil.Date `json:"departure_date"`
	Status        string     `json:"status"`
	RoomTypeID    int32      `json:"room_type_id"`
	RoomTypeName  string     `json:"room_type_name"`
	RoomID        int32      `json:"room_id"`
	RoomNumber    string     `json:"room_number"`
	Adults        int32      `json:"adults"`
	Teenagers     int32      `json:"teenagers"`
	Children      int32      `json:"children"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ReservationListItem struct {
	ID            uuid.UUID  `json:"id"`
	HolderName    string     `json:"holder_name"`
	ArrivalDate   civil.Date `json:"arrival_date"`
	DepartureDate civil.Date `json:"departure_date"`
	Status        string     `json:"status"`
	RoomNumber    string     `json:"room_number"`
	CreatedAt     time.Time  `json:"created_at"`
}

// NightView carries the room and room-type data eagerly so availability
// computation never goes back for them.
type NightView struct {
	ID            uuid.UUID  `json:"id"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	RoomID        int32      `json:"room_id"`
	RoomNumber    string     `json:"room_number"`
	RoomTypeID    int32      `json:"room_type_id"`
	RoomTypeName  string     `json:"room_type_name"`
	Date          civil.Date `json:"date"`
}

type AuthorizedStaffView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
