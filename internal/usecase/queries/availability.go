package queries

import (
	"context"

	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

// RoomReadStore lists the candidate rooms for availability computation.
// Retired rooms are already filtered out by the store.
type RoomReadStore interface {
	FindActive(ctx context.Context, roomTypeID *int32) ([]*RoomView, error)
}

// NightReadStore reads the night ledger.
type NightReadStore interface {
	FindByDate(ctx context.Context, date civil.Date) ([]*NightView, error)
	FindByPeriod(ctx context.Context, start, end civil.Date) ([]*NightView, error)
	FindByReservation(ctx context.Context, reservationID uuid.UUID) ([]*NightView, error)
}

type AvailabilityQueries interface {
	// FreeRoomsForDate returns every active room (of the type, when given)
	// with no ledger night dated exactly date.
	FreeRoomsForDate(ctx context.Context, date civil.Date, roomTypeID *int32) ([]*RoomView, error)
	// FreeRoomsForPeriod returns every active room with no ledger night
	// anywhere in [start, end]. One occupied night inside the window is
	// enough to exclude a room, even if both endpoints are free.
	FreeRoomsForPeriod(ctx context.Context, start, end civil.Date, roomTypeID *int32) ([]*RoomView, error)
}

type availabilityQueriesImpl struct {
	rooms  RoomReadStore
	nights NightReadStore
}

func NewAvailabilityQueries(rooms RoomReadStore, nights NightReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{rooms: rooms, nights: nights}
}

func (q *availabilityQueriesImpl) FreeRoomsForDate(ctx context.Context, date civil.Date, roomTypeID *int32) ([]*RoomView, error) {
	if date.IsZero() {
		return nil, errs.NewFieldError("date", "must be set")
	}

	occupied, err := q.nights.FindByDate(ctx, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read night ledger for date")
	}

	return q.subtractOccupied(ctx, occupied, roomTypeID)
}

func (q *availabilityQueriesImpl) FreeRoomsForPeriod(ctx context.Context, start, end civil.Date, roomTypeID *int32) ([]*RoomView, error) {
	if start.IsZero() {
		return nil, errs.NewFieldError("startDate", "must be set")
	}
	if end.IsZero() {
		return nil, errs.NewFieldError("endDate", "must be set")
	}
	if end.Before(start) {
		return nil, errs.NewFieldError("endDate", "must not precede startDate")
	}

	occupied, err := q.nights.FindByPeriod(ctx, start, end)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read night ledger for period")
	}

	return q.subtractOccupied(ctx, occupied, roomTypeID)
}

// subtractOccupied computes candidates minus the rooms referenced by any
// occupied night. An unknown room-type filter simply yields no candidates.
func (q *availabilityQueriesImpl) subtractOccupied(ctx context.Context, occupied []*NightView, roomTypeID *int32) ([]*RoomView, error) {
	candidates, err := q.rooms.FindActive(ctx, roomTypeID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list candidate rooms")
	}

	occupiedIDs := make(map[int32]struct{}, len(occupied))
	for _, n := range occupied {
		occupiedIDs[n.RoomID] = struct{}{}
	}

	free := make([]*RoomView, 0, len(candidates))
	for _, r := range candidates {
		if _, taken := occupiedIDs[r.ID]; !taken {
			free = append(free, r)
		}
	}
	return free, nil
}
