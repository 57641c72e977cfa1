package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) CreateType(ctx context.Context, tx db.DBTX, rt *room.RoomType) (int32, error) {
	query := `
		INSERT INTO room_types (name)
		VALUES ($1)
		RETURNING id
	`
	var id int32
	if err := tx.QueryRow(ctx, query, rt.Name()).Scan(&id); err != nil {
		return 0, wrapWriteErr("failed to insert room type", err)
	}
	return id, nil
}

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, rm *room.Room) (int32, error) {
	query := `
		INSERT INTO rooms (number, room_type_id)
		VALUES ($1, $2)
		RETURNING id
	`
	var id int32
	if err := tx.QueryRow(ctx, query, rm.Number().String(), rm.RoomTypeID()).Scan(&id); err != nil {
		return 0, wrapWriteErr("failed to insert room", err)
	}
	return id, nil
}

func (r *RoomRepository) Retire(ctx context.Context, tx db.DBTX, id int32) error {
	query := `
		UPDATE rooms
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return wrapWriteErr("failed to retire room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
