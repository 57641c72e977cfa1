package commands

import (
	"context"

	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateRoomParams struct {
	Number     string
	RoomTypeID int32
}

type RoomCommands interface {
	CreateType(ctx context.Context, name string) (int32, error)
	Create(ctx context.Context, params CreateRoomParams) (int32, error)
	Retire(ctx context.Context, id int32) error
}

type roomCommands struct {
	pool      *pgxpool.Pool
	rooms     RoomRepository
	roomReads RoomCommandReads
}

func NewRoomCommands(pool *pgxpool.Pool, rooms RoomRepository, roomReads RoomCommandReads) RoomCommands {
	return &roomCommands{pool: pool, rooms: rooms, roomReads: roomReads}
}

func (c *roomCommands) CreateType(ctx context.Context, name string) (int32, error) {
	rt, err := room.NewRoomType(name)
	if err != nil {
		return 0, err
	}
	id, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (int32, error) {
		return c.rooms.CreateType(ctx, tx, rt)
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *roomCommands) Create(ctx context.Context, params CreateRoomParams) (int32, error) {
	if _, err := c.roomReads.FindRoomType(ctx, params.RoomTypeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.Mark(err, errs.ErrRoomTypeNotFound)
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	number, err := room.NewRoomNumber(params.Number)
	if err != nil {
		return 0, err
	}
	rm, err := room.NewRoom(number, params.RoomTypeID)
	if err != nil {
		return 0, err
	}

	id, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (int32, error) {
		return c.rooms.Create(ctx, tx, rm)
	})
	if err != nil {
		// UNIQUE on active room numbers
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return 0, errs.Mark(err, errs.ErrDuplicateRoomNumber)
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *roomCommands) Retire(ctx context.Context, id int32) error {
	if _, err := c.roomReads.FindRoom(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrRoomNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.rooms.Retire(ctx, tx, id)
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
