package readstore

import (
	"context"

	"hotel-frontdesk/internal/domain/guest"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// GuestReadStore serves both query views and the command-side lookups.
type GuestReadStore struct {
	db db.DBTX
}

func NewGuestReadStore(dbtx db.DBTX) *GuestReadStore {
	return &GuestReadStore{db: dbtx}
}

const guestSelect = `
	SELECT id, first_name, middle_name, last_name, birthdate, gender,
	       nationality, nationality_code, address, created_at, updated_at
	FROM guests
`

func (s *GuestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GuestView, error) {
	query := guestSelect + `
		WHERE id = $1 AND deleted_at IS NULL
	`
	view, err := scanGuestView(s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query guest", err)
	}
	return view, nil
}

func (s *GuestReadStore) SearchByName(ctx context.Context, name string, limit int32) ([]*queries.GuestView, error) {
	query := guestSelect + `
		WHERE deleted_at IS NULL
		  AND (first_name ILIKE '%' || $1 || '%'
		    OR last_name ILIKE '%' || $1 || '%')
		ORDER BY last_name, first_name
		LIMIT $2
	`
	rows, err := s.db.Query(ctx, query, name, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search guests", err)
	}
	defer rows.Close()

	var views []*queries.GuestView
	for rows.Next() {
		view, err := scanGuestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate guests", err)
	}
	return views, nil
}

func (s *GuestReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*commands.GuestSnapshot, error) {
	query := `
		SELECT id, TRIM(CONCAT(first_name, ' ', last_name))
		FROM guests
		WHERE id = $1 AND deleted_at IS NULL
	`
	var (
		snap commands.GuestSnapshot
		pid  pgtype.UUID
	)
	if err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&pid, &snap.FullName); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query guest snapshot", err)
	}
	snap.ID = uuid.UUID(pid.Bytes)
	return &snap, nil
}

func (s *GuestReadStore) FindProfile(ctx context.Context, id uuid.UUID) (*guest.Profile, error) {
	query := `
		SELECT id, first_name, middle_name, last_name, birthdate, gender,
		       nationality, nationality_code, address,
		       created_at, updated_at, deleted_at
		FROM guests
		WHERE id = $1 AND deleted_at IS NULL
	`
	var (
		pid        pgtype.UUID
		firstName  string
		middleName pgtype.Text
		lastName   string
		birthdate  pgtype.Date
		gender     string
		nat        string
		natCode    string
		address    pgtype.Text
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
		deletedAt  pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&pid, &firstName, &middleName, &lastName, &birthdate, &gender,
		&nat, &natCode, &address, &createdAt, &updatedAt, &deletedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query guest profile", err)
	}

	return guest.ReconstructProfile(
		uuid.UUID(pid.Bytes),
		firstName, middleName.String, lastName,
		pgconv.DateFromPgtype(birthdate),
		guest.Gender(gender),
		nat, natCode, address.String,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
		pgconv.TimePtrFromPgtype(deletedAt),
	), nil
}

func scanGuestView(row pgx.Row) (*queries.GuestView, error) {
	var (
		v          queries.GuestView
		id         pgtype.UUID
		middleName pgtype.Text
		birthdate  pgtype.Date
		address    pgtype.Text
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &v.FirstName, &middleName, &v.LastName, &birthdate, &v.Gender,
		&v.Nationality, &v.NationalityCode, &address, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.ID = uuid.UUID(id.Bytes)
	v.MiddleName = pgconv.StringPtrFromPgtype(middleName)
	v.Birthdate = pgconv.DatePtrFromPgtype(birthdate)
	v.Address = pgconv.StringPtrFromPgtype(address)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
