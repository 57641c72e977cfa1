package queries

import (
	"context"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

type GuestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
	SearchByName(ctx context.Context, name string, limit int32) ([]*GuestView, error)
}

type GuestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
	SearchByName(ctx context.Context, name string, limit int) ([]*GuestView, error)
}

type guestQueriesImpl struct {
	store GuestReadStore
}

func NewGuestQueries(store GuestReadStore) GuestQueries {
	return &guestQueriesImpl{store: store}
}

func (q *guestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GuestView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrGuestNotFound
		}
		return nil, errs.Wrap(err, "failed to find guest profile")
	}
	return view, nil
}

func (q *guestQueriesImpl) SearchByName(ctx context.Context, name string, limit int) ([]*GuestView, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	views, err := q.store.SearchByName(ctx, name, int32(limit))
	if err != nil {
		return nil, errs.Wrap(err, "failed to search guest profiles")
	}
	return views, nil
}
