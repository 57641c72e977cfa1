package readstore

import (
	"context"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationSelect = `
	SELECT
		res.id, res.holder_id,
		TRIM(CONCAT(g.first_name, ' ', g.last_name)),
		res.arrival_date, res.departure_date, res.status,
		res.room_type_id, rt.name, res.room_id, r.number,
		res.adults, res.teenagers, res.children,
		res.created_at, res.updated_at
	FROM reservations res
	JOIN guests g ON g.id = res.holder_id
	JOIN rooms r ON r.id = res.room_id
	JOIN room_types rt ON rt.id = res.room_type_id
`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := reservationSelect + `
		WHERE res.id = $1 AND res.deleted_at IS NULL
	`
	row := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id))
	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query reservation", err)
	}
	return view, nil
}

func (s *ReservationReadStore) FindByHolder(ctx context.Context, holderID uuid.UUID) ([]*queries.ReservationListItem, error) {
	query := `
		SELECT
			res.id,
			TRIM(CONCAT(g.first_name, ' ', g.last_name)),
			res.arrival_date, res.departure_date, res.status,
			r.number, res.created_at
		FROM reservations res
		JOIN guests g ON g.id = res.holder_id
		JOIN rooms r ON r.id = res.room_id
		WHERE res.holder_id = $1 AND res.deleted_at IS NULL
		ORDER BY res.arrival_date DESC
	`
	rows, err := s.db.Query(ctx, query, pgconv.UUIDToPgtype(holderID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query holder reservations", err)
	}
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var (
			item      queries.ReservationListItem
			id        pgtype.UUID
			arrival   pgtype.Date
			departure pgtype.Date
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &item.HolderName, &arrival, &departure, &item.Status, &item.RoomNumber, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation list item", err)
		}
		item.ID = uuid.UUID(id.Bytes)
		item.ArrivalDate = pgconv.DateFromPgtype(arrival)
		item.DepartureDate = pgconv.DateFromPgtype(departure)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate holder reservations", err)
	}
	return items, nil
}

// FindByStatusOnDate lists reservations in the given status that own a
// ledger night on the date, for the front-desk day board.
func (s *ReservationReadStore) FindByStatusOnDate(ctx context.Context, status reservation.Status, date civil.Date) ([]*queries.ReservationView, error) {
	query := reservationSelect + `
		WHERE res.status = $1
		  AND res.deleted_at IS NULL
		  AND EXISTS (
			SELECT 1 FROM reservation_nights n
			WHERE n.reservation_id = res.id AND n.stay_date = $2
		  )
		ORDER BY r.number
	`
	rows, err := s.db.Query(ctx, query, status.String(), pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations by status", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return views, nil
}

func (s *ReservationReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reservations WHERE id = $1 AND deleted_at IS NULL
		)
	`
	var exists bool
	if err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to probe reservation existence", err)
	}
	return exists, nil
}

// FindSnapshot is the command-side lookup used before status changes,
// cancellation and ledger rebuilds.
func (s *ReservationReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	query := `
		SELECT id, holder_id, arrival_date, departure_date, status, room_type_id, room_id
		FROM reservations
		WHERE id = $1 AND deleted_at IS NULL
	`
	var (
		snap          commands.ReservationSnapshot
		pid, holderID pgtype.UUID
		arrival       pgtype.Date
		departure     pgtype.Date
		status        string
	)
	err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&pid, &holderID, &arrival, &departure, &status, &snap.RoomTypeID, &snap.RoomID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query reservation snapshot", err)
	}
	snap.ID = uuid.UUID(pid.Bytes)
	snap.HolderID = uuid.UUID(holderID.Bytes)
	snap.ArrivalDate = pgconv.DateFromPgtype(arrival)
	snap.DepartureDate = pgconv.DateFromPgtype(departure)
	snap.Status = reservation.Status(status)
	return &snap, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		v            queries.ReservationView
		id, holderID pgtype.UUID
		arrival      pgtype.Date
		departure    pgtype.Date
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &holderID, &v.HolderName,
		&arrival, &departure, &v.Status,
		&v.RoomTypeID, &v.RoomTypeName, &v.RoomID, &v.RoomNumber,
		&v.Adults, &v.Teenagers, &v.Children,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.ID = uuid.UUID(id.Bytes)
	v.HolderID = uuid.UUID(holderID.Bytes)
	v.ArrivalDate = pgconv.DateFromPgtype(arrival)
	v.DepartureDate = pgconv.DateFromPgtype(departure)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
