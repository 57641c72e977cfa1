package readstore

import (
	"context"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type StaffReadStore struct {
	db db.DBTX
}

func NewStaffReadStore(dbtx db.DBTX) *StaffReadStore {
	return &StaffReadStore{db: dbtx}
}

func (s *StaffReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedStaffView, error) {
	query := `
		SELECT id, email, role, is_active
		FROM staff
		WHERE id = $1
	`
	var (
		v   queries.AuthorizedStaffView
		pid pgtype.UUID
	)
	if err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&pid, &v.Email, &v.Role, &v.IsActive); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query staff member", err)
	}
	v.ID = uuid.UUID(pid.Bytes)
	return &v, nil
}

func (s *StaffReadStore) FindByEmail(ctx context.Context, email string) (*commands.StaffCredentials, error) {
	query := `
		SELECT id, email, password_hash, role, is_active, last_login
		FROM staff
		WHERE email = $1
	`
	var (
		creds     commands.StaffCredentials
		pid       pgtype.UUID
		lastLogin pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, query, email).Scan(
		&pid, &creds.Email, &creds.PasswordHash, &creds.Role, &creds.IsActive, &lastLogin,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query staff credentials", err)
	}
	creds.ID = uuid.UUID(pid.Bytes)
	creds.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &creds, nil
}
