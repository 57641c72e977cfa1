package commands

import (
	"context"

	"hotel-frontdesk/internal/domain/guest"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GuestProfileParams struct {
	FirstName   string
	MiddleName  string
	LastName    string
	Birthdate   civil.Date
	Gender      string
	Nationality string
	Address     string
}

type GuestCommands interface {
	Register(ctx context.Context, params GuestProfileParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params GuestProfileParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type guestCommands struct {
	pool       *pgxpool.Pool
	guests     GuestRepository
	guestReads GuestCommandReads
	directory  *guest.NationalityDirectory
	clock      clock.Clock
}

func NewGuestCommands(
	pool *pgxpool.Pool,
	guests GuestRepository,
	guestReads GuestCommandReads,
	directory *guest.NationalityDirectory,
	clk clock.Clock,
) GuestCommands {
	return &guestCommands{
		pool:       pool,
		guests:     guests,
		guestReads: guestReads,
		directory:  directory,
		clock:      clk,
	}
}

func (c *guestCommands) Register(ctx context.Context, params GuestProfileParams) (uuid.UUID, error) {
	gender, err := guest.NewGender(params.Gender)
	if err != nil {
		return uuid.Nil, err
	}
	profile, err := guest.NewProfile(
		c.directory,
		params.FirstName, params.MiddleName, params.LastName,
		params.Birthdate, gender, params.Nationality, params.Address,
		c.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return c.guests.Create(ctx, tx, profile)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *guestCommands) Update(ctx context.Context, id uuid.UUID, params GuestProfileParams) error {
	profile, err := c.guestReads.FindProfile(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrGuestNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	gender, err := guest.NewGender(params.Gender)
	if err != nil {
		return err
	}
	if err := profile.Update(
		c.directory,
		params.FirstName, params.MiddleName, params.LastName,
		params.Birthdate, gender, params.Nationality, params.Address,
		c.clock.Now(),
	); err != nil {
		return err
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.guests.Update(ctx, tx, profile)
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *guestCommands) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := c.guestReads.FindSnapshot(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrGuestNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.guests.SoftDelete(ctx, tx, id)
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
