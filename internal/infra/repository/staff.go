package repository

import (
	"context"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type StaffRepository struct{}

func NewStaffRepository() *StaffRepository {
	return &StaffRepository{}
}

func (r *StaffRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, staffID uuid.UUID) error {
	query := `
		UPDATE staff
		SET last_login = now(), updated_at = now()
		WHERE id = $1
	`
	tag, err := tx.Exec(ctx, query, pgconv.UUIDToPgtype(staffID))
	if err != nil {
		return wrapWriteErr("failed to record last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("staff member not found", nil, infra.KindNotFound)
	}
	return nil
}
