package readstore

import (
	"context"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// NightReadStore reads the night ledger with room and room-type data
// joined in, so availability computation is a single round trip.
type NightReadStore struct {
	db db.DBTX
}

func NewNightReadStore(dbtx db.DBTX) *NightReadStore {
	return &NightReadStore{db: dbtx}
}

const nightSelect = `
	SELECT n.id, n.reservation_id, n.room_id, r.number, r.room_type_id, rt.name, n.stay_date
	FROM reservation_nights n
	JOIN rooms r ON r.id = n.room_id
	JOIN room_types rt ON rt.id = r.room_type_id
`

func (s *NightReadStore) FindByDate(ctx context.Context, date civil.Date) ([]*queries.NightView, error) {
	query := nightSelect + `
		WHERE n.stay_date = $1
		ORDER BY n.room_id
	`
	rows, err := s.db.Query(ctx, query, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query nights by date", err)
	}
	defer rows.Close()

	return scanNightViews(rows)
}

func (s *NightReadStore) FindByPeriod(ctx context.Context, start, end civil.Date) ([]*queries.NightView, error) {
	query := nightSelect + `
		WHERE n.stay_date BETWEEN $1 AND $2
		ORDER BY n.stay_date, n.room_id
	`
	rows, err := s.db.Query(ctx, query, pgconv.DateToPgtype(start), pgconv.DateToPgtype(end))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query nights by period", err)
	}
	defer rows.Close()

	return scanNightViews(rows)
}

func (s *NightReadStore) FindByReservation(ctx context.Context, reservationID uuid.UUID) ([]*queries.NightView, error) {
	query := nightSelect + `
		WHERE n.reservation_id = $1
		ORDER BY n.stay_date
	`
	rows, err := s.db.Query(ctx, query, pgconv.UUIDToPgtype(reservationID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservation nights", err)
	}
	defer rows.Close()

	return scanNightViews(rows)
}

func scanNightViews(rows pgx.Rows) ([]*queries.NightView, error) {
	var views []*queries.NightView
	for rows.Next() {
		var (
			v         queries.NightView
			id, resID pgtype.UUID
			stayDate  pgtype.Date
		)
		if err := rows.Scan(&id, &resID, &v.RoomID, &v.RoomNumber, &v.RoomTypeID, &v.RoomTypeName, &stayDate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan night", err)
		}
		v.ID = uuid.UUID(id.Bytes)
		v.ReservationID = uuid.UUID(resID.Bytes)
		v.Date = pgconv.DateFromPgtype(stayDate)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate nights", err)
	}
	return views, nil
}
