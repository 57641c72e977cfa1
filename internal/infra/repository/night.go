package repository

import (
	"context"
	"errors"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// NightLedgerRepository writes the per-night occupancy rows. Two unique
// constraints guard it: (room_id, stay_date) closes the double-booking
// race, (reservation_id, stay_date) keeps expansion exactly-once even
// under concurrent writers.
type NightLedgerRepository struct{}

func NewNightLedgerRepository() *NightLedgerRepository {
	return &NightLedgerRepository{}
}

func (r *NightLedgerRepository) HasNights(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reservation_nights WHERE reservation_id = $1
		)
	`
	var exists bool
	if err := dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(reservationID)).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to probe reservation nights", err)
	}
	return exists, nil
}

func (r *NightLedgerRepository) CreateBatch(ctx context.Context, tx db.DBTX, nights []reservation.Night) error {
	query := `
		INSERT INTO reservation_nights (id, reservation_id, room_id, stay_date)
		VALUES ($1, $2, $3, $4)
	`
	for _, n := range nights {
		_, err := tx.Exec(ctx, query,
			pgconv.UUIDToPgtype(n.ID()),
			pgconv.UUIDToPgtype(n.ReservationID()),
			n.RoomID(),
			pgconv.DateToPgtype(n.Date()),
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
				return infra.WrapRepoErr("night already occupied", err, infra.KindConflict)
			}
			return wrapWriteErr("failed to insert reservation night", err)
		}
	}
	return nil
}

func (r *NightLedgerRepository) DeleteForReservation(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) error {
	query := `
		DELETE FROM reservation_nights
		WHERE reservation_id = $1
	`
	if _, err := tx.Exec(ctx, query, pgconv.UUIDToPgtype(reservationID)); err != nil {
		return wrapWriteErr("failed to delete reservation nights", err)
	}
	return nil
}
