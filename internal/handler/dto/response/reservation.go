package response

import (
	"time"

	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID            uuid.UUID  `json:"id"`
	HolderID      uuid.UUID  `json:"holderId"`
	HolderName    string     `json:"holderName"`
	ArrivalDate   civil.Date `json:"arrivalDate"`
	DepartureDate civil.Date `json:"departureDate"`
	Status        string     `json:"status"`
	RoomTypeID    int32      `json:"roomTypeId"`
	RoomTypeName  string     `json:"roomTypeName"`
	RoomID        int32      `json:"roomId"`
	RoomNumber    string     `json:"roomNumber"`
	Adults        int32      `json:"adults"`
	Teenagers     int32      `json:"teenagers"`
	Children      int32      `json:"children"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID            uuid.UUID  `json:"id"`
	HolderName    string     `json:"holderName"`
	ArrivalDate   civil.Date `json:"arrivalDate"`
	DepartureDate civil.Date `json:"departureDate"`
	Status        string     `json:"status"`
	RoomNumber    string     `json:"roomNumber"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type NightResponse struct {
	ID            uuid.UUID  `json:"id"`
	ReservationID uuid.UUID  `json:"reservationId"`
	RoomID        int32      `json:"roomId"`
	RoomNumber    string     `json:"roomNumber"`
	RoomTypeID    int32      `json:"roomTypeId"`
	RoomTypeName  string     `json:"roomTypeName"`
	Date          civil.Date `json:"date"`
}

// View and response structs share field names, so the conversions are
// straight copies.
func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	var resp ReservationListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromNightView(rm *queries.NightView) *NightResponse {
	var resp NightResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
