package queries

import (
	"context"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrStaffNotFound = errs.New("staff member not found")

type StaffReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedStaffView, error)
}

type StaffQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedStaffView, error)
}

type staffQueriesImpl struct {
	store StaffReadStore
}

func NewStaffQueries(store StaffReadStore) StaffQueries {
	return &staffQueriesImpl{store: store}
}

func (q *staffQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedStaffView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, errs.Wrap(err, "failed to load staff member")
	}
	return view, nil
}
