package queries

import (
	"context"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByHolder(ctx context.Context, holderID uuid.UUID) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByHolder(ctx context.Context, holderID uuid.UUID) ([]*ReservationListItem, error)
	// NightsFor lists the expanded occupancy rows of a reservation.
	NightsFor(ctx context.Context, reservationID uuid.UUID) ([]*NightView, error)
}

type reservationQueriesImpl struct {
	store  ReservationReadStore
	nights NightReadStore
}

func NewReservationQueries(store ReservationReadStore, nights NightReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store, nights: nights}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByHolder(ctx context.Context, holderID uuid.UUID) ([]*ReservationListItem, error) {
	items, err := q.store.FindByHolder(ctx, holderID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list holder reservations")
	}
	return items, nil
}

func (q *reservationQueriesImpl) NightsFor(ctx context.Context, reservationID uuid.UUID) ([]*NightView, error) {
	views, err := q.nights.FindByReservation(ctx, reservationID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservation nights")
	}
	return views, nil
}
