package commands

import (
	"context"
	"errors"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateReservationParams struct {
	HolderID      uuid.UUID
	ArrivalDate   civil.Date
	DepartureDate civil.Date
	RoomTypeID    int32
	RoomID        int32
	Adults        int
	Teenagers     int
	Children      int
}

type ReservationCommands interface {
	Create(ctx context.Context, params CreateReservationParams) (uuid.UUID, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	Cancel(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExpandNights(ctx context.Context, reservationID uuid.UUID) error
}

type reservationCommands struct {
	pool         *pgxpool.Pool
	reservations ReservationRepository
	nights       NightLedgerRepository
	resReads     ReservationCommandReads
	guestReads   GuestCommandReads
	roomReads    RoomCommandReads
	availability queries.AvailabilityQueries
	clock        clock.Clock
}

func NewReservationCommands(
	pool *pgxpool.Pool,
	reservations ReservationRepository,
	nights NightLedgerRepository,
	resReads ReservationCommandReads,
	guestReads GuestCommandReads,
	roomReads RoomCommandReads,
	availability queries.AvailabilityQueries,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommands{
		pool:         pool,
		reservations: reservations,
		nights:       nights,
		resReads:     resReads,
		guestReads:   guestReads,
		roomReads:    roomReads,
		availability: availability,
		clock:        clk,
	}
}

// Create validates in a fixed order so callers always see the most
// fundamental failure first: field-level checks, then the temporal
// check against today, then referential lookups, and only then the
// transactional write. The unique constraint on (room_id, stay_date)
// closes the race between the availability pre-check and commit.
func (c *reservationCommands) Create(ctx context.Context, params CreateReservationParams) (uuid.UUID, error) {
	party, err := reservation.NewPartyComposition(params.Adults, params.Teenagers, params.Children)
	if err != nil {
		return uuid.Nil, err
	}
	stay, err := reservation.NewStayPeriod(params.ArrivalDate, params.DepartureDate)
	if err != nil {
		return uuid.Nil, err
	}

	today := clock.Today(c.clock)
	if stay.StartsBefore(today) {
		return uuid.Nil, errs.Mark(errs.New("arrival date is in the past"), errs.ErrArrivalInPast)
	}

	if _, err := c.guestReads.FindSnapshot(ctx, params.HolderID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, errs.ErrGuestNotFound)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if _, err := c.roomReads.FindRoomType(ctx, params.RoomTypeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, errs.ErrRoomTypeNotFound)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	rm, err := c.roomReads.FindRoom(ctx, params.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if rm.RoomTypeID != params.RoomTypeID {
		return uuid.Nil, errs.NewFieldError("roomId", "room does not belong to the requested room type")
	}

	res, err := reservation.NewReservation(params.HolderID, stay, params.RoomTypeID, params.RoomID, party, today)
	if err != nil {
		return uuid.Nil, err
	}

	// Advisory pre-check; the real guarantee is the constraint below.
	free, err := c.availability.FreeRoomsForPeriod(ctx, stay.Arrival(), stay.Departure(), &params.RoomTypeID)
	if err != nil {
		return uuid.Nil, err
	}
	if !containsRoom(free, params.RoomID) {
		return uuid.Nil, errs.Mark(errs.New("room is occupied during the requested period"), errs.ErrRoomUnavailable)
	}

	id, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		id, err := c.reservations.Create(ctx, tx, res)
		if err != nil {
			return uuid.Nil, err
		}
		if err := c.expandNights(ctx, tx, id, res.ExpandNights()); err != nil {
			return uuid.Nil, err
		}
		return id, nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, errs.ErrRoomUnavailable)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

// expandNights writes one ledger row per stay night, guarded so a
// reservation is never expanded twice.
func (c *reservationCommands) expandNights(ctx context.Context, tx db.DBTX, reservationID uuid.UUID, nights []reservation.Night) error {
	exists, err := c.nights.HasNights(ctx, tx, reservationID)
	if err != nil {
		return err
	}
	if exists {
		return errs.Mark(errs.New("nights already expanded for reservation"), errs.ErrNightsAlreadyExpanded)
	}
	return c.nights.CreateBatch(ctx, tx, nights)
}

// ExpandNights re-derives the ledger rows for an existing reservation.
// Repair path for rows created before the ledger existed; conflicts if
// the reservation already has nights.
func (c *reservationCommands) ExpandNights(ctx context.Context, reservationID uuid.UUID) error {
	snap, err := c.resReads.FindSnapshot(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrReservationNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	stay, err := reservation.NewStayPeriod(snap.ArrivalDate, snap.DepartureDate)
	if err != nil {
		return err
	}
	nights := reservation.NightsForStay(reservationID, snap.RoomID, stay)

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.expandNights(ctx, tx, reservationID, nights)
	})
	if err != nil {
		if errors.Is(err, errs.ErrNightsAlreadyExpanded) {
			return err
		}
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, errs.ErrRoomUnavailable)
		}
		return err
	}
	return nil
}

func (c *reservationCommands) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	st, err := reservation.NewStatus(status)
	if err != nil {
		return err
	}
	if _, err := c.resReads.FindSnapshot(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrReservationNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.reservations.UpdateStatus(ctx, tx, id, st)
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// Cancel marks the reservation canceled and releases its nights so the
// room becomes bookable again for the period.
func (c *reservationCommands) Cancel(ctx context.Context, id uuid.UUID) error {
	snap, err := c.resReads.FindSnapshot(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrReservationNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snap.Status == reservation.StatusCanceled {
		return errs.Mark(errs.New("reservation already canceled"), reservation.ErrAlreadyCanceled)
	}
	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		if err := c.reservations.UpdateStatus(ctx, tx, id, reservation.StatusCanceled); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, c.nights.DeleteForReservation(ctx, tx, id)
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// Delete soft-deletes the reservation and retires its ledger rows in
// the same transaction; nights never outlive their reservation.
func (c *reservationCommands) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := c.resReads.FindSnapshot(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrReservationNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		if err := c.nights.DeleteForReservation(ctx, tx, id); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, c.reservations.SoftDelete(ctx, tx, id)
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func containsRoom(rooms []*queries.RoomView, id int32) bool {
	for _, r := range rooms {
		if r.ID == id {
			return true
		}
	}
	return false
}
