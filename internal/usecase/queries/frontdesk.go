package queries

import (
	"context"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

// FrontDeskReadStore answers the status+night join: reservations whose
// manually managed status matches AND that have a ledger night on the date.
type FrontDeskReadStore interface {
	FindByStatusOnDate(ctx context.Context, status reservation.Status, date civil.Date) ([]*ReservationView, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// FrontDeskQueries drives the daily front-desk board. Status is externally
// owned; these queries never infer it from the stay dates.
type FrontDeskQueries interface {
	ArrivingOn(ctx context.Context, date civil.Date) ([]*ReservationView, error)
	InHouseOn(ctx context.Context, date civil.Date) ([]*ReservationView, error)
	DepartingOn(ctx context.Context, date civil.Date) ([]*ReservationView, error)
	ReservationExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type frontDeskQueriesImpl struct {
	store FrontDeskReadStore
}

func NewFrontDeskQueries(store FrontDeskReadStore) FrontDeskQueries {
	return &frontDeskQueriesImpl{store: store}
}

func (q *frontDeskQueriesImpl) ArrivingOn(ctx context.Context, date civil.Date) ([]*ReservationView, error) {
	return q.byStatusOn(ctx, reservation.StatusArriving, date)
}

func (q *frontDeskQueriesImpl) InHouseOn(ctx context.Context, date civil.Date) ([]*ReservationView, error) {
	return q.byStatusOn(ctx, reservation.StatusInHouse, date)
}

func (q *frontDeskQueriesImpl) DepartingOn(ctx context.Context, date civil.Date) ([]*ReservationView, error) {
	return q.byStatusOn(ctx, reservation.StatusDeparturing, date)
}

func (q *frontDeskQueriesImpl) byStatusOn(ctx context.Context, status reservation.Status, date civil.Date) ([]*ReservationView, error) {
	if date.IsZero() {
		return nil, errs.NewFieldError("date", "must be set")
	}
	views, err := q.store.FindByStatusOnDate(ctx, status, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query front desk board")
	}
	return views, nil
}

func (q *frontDeskQueriesImpl) ReservationExists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := q.store.Exists(ctx, id)
	if err != nil {
		return false, errs.Wrap(err, "failed to probe reservation existence")
	}
	return exists, nil
}
