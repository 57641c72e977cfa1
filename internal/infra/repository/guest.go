package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/guest"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GuestRepository struct{}

func NewGuestRepository() *GuestRepository {
	return &GuestRepository{}
}

func (r *GuestRepository) Create(ctx context.Context, tx db.DBTX, p *guest.Profile) (uuid.UUID, error) {
	query := `
		INSERT INTO guests (
			id, first_name, middle_name, last_name, birthdate, gender,
			nationality, nationality_code, address
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(p.ID()),
		p.FirstName(),
		nullableText(p.MiddleName()),
		p.LastName(),
		nullableDate(p),
		p.Gender().String(),
		p.Nationality(),
		p.NationalityCode(),
		nullableText(p.Address()),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to insert guest", err)
	}
	return p.ID(), nil
}

func (r *GuestRepository) Update(ctx context.Context, tx db.DBTX, p *guest.Profile) error {
	query := `
		UPDATE guests
		SET first_name = $2, middle_name = $3, last_name = $4,
		    birthdate = $5, gender = $6, nationality = $7,
		    nationality_code = $8, address = $9, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(p.ID()),
		p.FirstName(),
		nullableText(p.MiddleName()),
		p.LastName(),
		nullableDate(p),
		p.Gender().String(),
		p.Nationality(),
		p.NationalityCode(),
		nullableText(p.Address()),
	)
	if err != nil {
		return wrapWriteErr("failed to update guest", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *GuestRepository) SoftDelete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	query := `
		UPDATE guests
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := tx.Exec(ctx, query, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapWriteErr("failed to delete guest", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return nil
}

func nullableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func nullableDate(p *guest.Profile) pgtype.Date {
	if p.Birthdate().IsZero() {
		return pgtype.Date{Valid: false}
	}
	return pgconv.DateToPgtype(p.Birthdate())
}
