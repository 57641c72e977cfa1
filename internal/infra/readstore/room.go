package readstore

import (
	"context"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

// RoomReadStore serves both the room catalog and the availability
// candidate listing. Retired rooms never appear in results.
type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

const roomSelectColumns = `
	r.id, r.number, r.room_type_id, rt.name
`

func (s *RoomReadStore) FindActive(ctx context.Context, roomTypeID *int32) ([]*queries.RoomView, error) {
	query := `
		SELECT ` + roomSelectColumns + `
		FROM rooms r
		JOIN room_types rt ON rt.id = r.room_type_id
		WHERE r.deleted_at IS NULL
		  AND ($1::int IS NULL OR r.room_type_id = $1)
		ORDER BY r.number
	`
	rows, err := s.db.Query(ctx, query, roomTypeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active rooms", err)
	}
	defer rows.Close()

	return scanRoomViews(rows)
}

func (s *RoomReadStore) FindByID(ctx context.Context, id int32) (*queries.RoomView, error) {
	query := `
		SELECT ` + roomSelectColumns + `
		FROM rooms r
		JOIN room_types rt ON rt.id = r.room_type_id
		WHERE r.id = $1 AND r.deleted_at IS NULL
	`
	var v queries.RoomView
	err := s.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Number, &v.RoomTypeID, &v.RoomTypeName)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query room", err)
	}
	return &v, nil
}

func (s *RoomReadStore) FindAll(ctx context.Context, sort queries.RoomSortKey) ([]*queries.RoomView, error) {
	// Sort keys are enumerated; anything else never reaches SQL.
	orderBy := "r.number, r.id"
	if sort == queries.RoomSortByType {
		orderBy = "rt.name, r.number"
	}

	query := `
		SELECT ` + roomSelectColumns + `
		FROM rooms r
		JOIN room_types rt ON rt.id = r.room_type_id
		WHERE r.deleted_at IS NULL
		ORDER BY ` + orderBy
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query rooms", err)
	}
	defer rows.Close()

	return scanRoomViews(rows)
}

func (s *RoomReadStore) FindAllTypes(ctx context.Context) ([]*queries.RoomTypeView, error) {
	query := `
		SELECT id, name
		FROM room_types
		ORDER BY id
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query room types", err)
	}
	defer rows.Close()

	var views []*queries.RoomTypeView
	for rows.Next() {
		var v queries.RoomTypeView
		if err := rows.Scan(&v.ID, &v.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room types", err)
	}
	return views, nil
}

// Command-side lookups for referential validation.

func (s *RoomReadStore) FindRoom(ctx context.Context, id int32) (*commands.RoomSnapshot, error) {
	query := `
		SELECT id, number, room_type_id
		FROM rooms
		WHERE id = $1 AND deleted_at IS NULL
	`
	var snap commands.RoomSnapshot
	if err := s.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Number, &snap.RoomTypeID); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query room snapshot", err)
	}
	return &snap, nil
}

func (s *RoomReadStore) FindRoomType(ctx context.Context, id int32) (*commands.RoomTypeSnapshot, error) {
	query := `
		SELECT id, name
		FROM room_types
		WHERE id = $1
	`
	var snap commands.RoomTypeSnapshot
	if err := s.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query room type snapshot", err)
	}
	return &snap, nil
}

func scanRoomViews(rows pgx.Rows) ([]*queries.RoomView, error) {
	var views []*queries.RoomView
	for rows.Next() {
		var v queries.RoomView
		if err := rows.Scan(&v.ID, &v.Number, &v.RoomTypeID, &v.RoomTypeName); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}
	return views, nil
}
