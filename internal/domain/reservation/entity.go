package reservation

import (
	"errors"
	"time"

	"hotel-frontdesk/internal/pkg/civil"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayPeriod = errors.New("arrival date must precede departure date")
	ErrPastArrival       = errors.New("arrival date is in the past")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrAlreadyCanceled   = errors.New("reservation is already canceled")
)

// Reservation is a stay booked for a holder profile: a date span, a party,
// a requested room type and the physical room assigned at booking time.
type Reservation struct {
	id         uuid.UUID
	holderID   uuid.UUID
	stay       StayPeriod
	status     Status
	roomTypeID int32
	roomID     int32
	party      PartyComposition
	createdAt  time.Time
	updatedAt  time.Time
	deletedAt  *time.Time
}

// NewReservation validates a new booking. The caller supplies today's
// business date; arrivals before it are rejected (the departure date is
// deliberately not checked against today, only against the arrival).
func NewReservation(
	holderID uuid.UUID,
	stay StayPeriod,
	roomTypeID int32,
	roomID int32,
	party PartyComposition,
	today civil.Date,
) (*Reservation, error) {
	if stay.StartsBefore(today) {
		return nil, ErrPastArrival
	}

	return &Reservation{
		id:         uuid.New(),
		holderID:   holderID,
		stay:       stay,
		status:     StatusExpected,
		roomTypeID: roomTypeID,
		roomID:     roomID,
		party:      party,
	}, nil
}

func ReconstructReservation(
	id, holderID uuid.UUID,
	stay StayPeriod,
	status Status,
	roomTypeID, roomID int32,
	party PartyComposition,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		holderID:   holderID,
		stay:       stay,
		status:     status,
		roomTypeID: roomTypeID,
		roomID:     roomID,
		party:      party,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		deletedAt:  deletedAt,
	}
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) HolderID() uuid.UUID     { return r.holderID }
func (r *Reservation) Stay() StayPeriod        { return r.stay }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) RoomTypeID() int32       { return r.roomTypeID }
func (r *Reservation) RoomID() int32           { return r.roomID }
func (r *Reservation) Party() PartyComposition { return r.party }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }

func (r *Reservation) IsCanceled() bool { return r.status == StatusCanceled }
func (r *Reservation) IsDeleted() bool  { return r.deletedAt != nil }

// SetStatus records an externally decided transition. Any valid status is
// accepted; ordering of transitions is owned by the front desk, not here.
func (r *Reservation) SetStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	r.status = status
	return nil
}

func (r *Reservation) Cancel() error {
	if r.status == StatusCanceled {
		return ErrAlreadyCanceled
	}
	r.status = StatusCanceled
	return nil
}
