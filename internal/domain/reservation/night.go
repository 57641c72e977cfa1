package reservation

import (
	"hotel-frontdesk/internal/pkg/civil"

	"github.com/google/uuid"
)

// Night is one occupied (reservation, room, date) triple: the atomic unit
// of occupancy. A reservation owns its nights; they are created in one
// batch right after the reservation row and never individually duplicated.
type Night struct {
	id            uuid.UUID
	reservationID uuid.UUID
	roomID        int32
	date          civil.Date
}

func ReconstructNight(id, reservationID uuid.UUID, roomID int32, date civil.Date) Night {
	return Night{
		id:            id,
		reservationID: reservationID,
		roomID:        roomID,
		date:          date,
	}
}

func (n Night) ID() uuid.UUID            { return n.id }
func (n Night) ReservationID() uuid.UUID { return n.reservationID }
func (n Night) RoomID() int32            { return n.roomID }
func (n Night) Date() civil.Date         { return n.date }

// NightsForStay derives the ledger rows for an already persisted
// reservation, e.g. when rebuilding the ledger.
func NightsForStay(reservationID uuid.UUID, roomID int32, stay StayPeriod) []Night {
	dates := stay.Dates()
	nights := make([]Night, len(dates))
	for i, d := range dates {
		nights[i] = Night{
			id:            uuid.New(),
			reservationID: reservationID,
			roomID:        roomID,
			date:          d,
		}
	}
	return nights
}

// ExpandNights converts the reservation's stay into one Night per calendar
// date, arrival through departure inclusive, all assigned to the
// reservation's room. The result always has exactly Stay().NightCount()
// entries.
func (r *Reservation) ExpandNights() []Night {
	return NightsForStay(r.id, r.roomID, r.stay)
}
