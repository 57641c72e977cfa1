package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	query := `
		INSERT INTO reservations (
			id, holder_id, arrival_date, departure_date, status,
			room_type_id, room_id, adults, teenagers, children
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	stay := res.Stay()
	party := res.Party()
	_, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(res.ID()),
		pgconv.UUIDToPgtype(res.HolderID()),
		pgconv.DateToPgtype(stay.Arrival()),
		pgconv.DateToPgtype(stay.Departure()),
		res.Status().String(),
		res.RoomTypeID(),
		res.RoomID(),
		int32(party.Adults()),
		int32(party.Teenagers()),
		int32(party.Children()),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to insert reservation", err)
	}
	return res.ID(), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error {
	query := `
		UPDATE reservations
		SET status = $2, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := tx.Exec(ctx, query, pgconv.UUIDToPgtype(id), status.String())
	if err != nil {
		return wrapWriteErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) SoftDelete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	query := `
		UPDATE reservations
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := tx.Exec(ctx, query, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapWriteErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
