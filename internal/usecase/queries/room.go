package queries

import (
	"context"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/errs"
)

// RoomSortKey is the explicit, enumerated replacement for order-by-property
// reflection: every sortable column is named here and resolved by switch in
// the read store.
type RoomSortKey string

const (
	RoomSortByNumber RoomSortKey = "number"
	RoomSortByType   RoomSortKey = "type"
)

func (k RoomSortKey) IsValid() bool {
	switch k {
	case RoomSortByNumber, RoomSortByType:
		return true
	default:
		return false
	}
}

type RoomCatalogReadStore interface {
	FindByID(ctx context.Context, id int32) (*RoomView, error)
	FindAll(ctx context.Context, sort RoomSortKey) ([]*RoomView, error)
	FindAllTypes(ctx context.Context) ([]*RoomTypeView, error)
}

type RoomQueries interface {
	GetRoom(ctx context.Context, id int32) (*RoomView, error)
	ListRooms(ctx context.Context, sort RoomSortKey) ([]*RoomView, error)
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
}

type roomQueriesImpl struct {
	store RoomCatalogReadStore
}

func NewRoomQueries(store RoomCatalogReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) GetRoom(ctx context.Context, id int32) (*RoomView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}
	return view, nil
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context, sort RoomSortKey) ([]*RoomView, error) {
	if !sort.IsValid() {
		sort = RoomSortByNumber
	}
	rooms, err := q.store.FindAll(ctx, sort)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}
	return rooms, nil
}

func (q *roomQueriesImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error) {
	types, err := q.store.FindAllTypes(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list room types")
	}
	return types, nil
}
