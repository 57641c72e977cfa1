//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/tests/common/builder"
	commandsmock "hotel-frontdesk/tests/mock/commands"
	queriesmock "hotel-frontdesk/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reservationMocks struct {
	reservations *commandsmock.MockReservationRepository
	nights       *commandsmock.MockNightLedgerRepository
	resReads     *commandsmock.MockReservationCommandReads
	guestReads   *commandsmock.MockGuestCommandReads
	roomReads    *commandsmock.MockRoomCommandReads
	availability *queriesmock.MockAvailabilityQueries
}

// today is fixed so the past-arrival check is deterministic.
var businessToday = time.Date(2023, time.January, 10, 9, 0, 0, 0, time.UTC)

func newReservationCommands(t *testing.T) (commands.ReservationCommands, reservationMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := reservationMocks{
		reservations: commandsmock.NewMockReservationRepository(ctrl),
		nights:       commandsmock.NewMockNightLedgerRepository(ctrl),
		resReads:     commandsmock.NewMockReservationCommandReads(ctrl),
		guestReads:   commandsmock.NewMockGuestCommandReads(ctrl),
		roomReads:    commandsmock.NewMockRoomCommandReads(ctrl),
		availability: queriesmock.NewMockAvailabilityQueries(ctrl),
	}
	cmd := commands.NewReservationCommands(
		nil, // no pool: these tests cover the paths before the transactional write
		m.reservations,
		m.nights,
		m.resReads,
		m.guestReads,
		m.roomReads,
		m.availability,
		clock.NewMockClock(businessToday),
	)
	return cmd, m
}

func validParams() commands.CreateReservationParams {
	return builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.ArrivalDate = civil.NewDate(2023, time.January, 15)
		b.DepartureDate = civil.NewDate(2023, time.January, 17)
	}).BuildParams()
}

func notFound() error {
	return infra.WrapRepoErr("no rows", errors.New("no rows in result set"), infra.KindNotFound)
}

func TestCreateReservation_ValidationOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("field check fires first: bad party beats a past arrival", func(t *testing.T) {
		cmd, _ := newReservationCommands(t)
		params := validParams()
		params.Adults = -1
		params.ArrivalDate = civil.NewDate(2023, time.January, 9)

		_, err := cmd.Create(ctx, params)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
		assert.NotErrorIs(t, err, errs.ErrArrivalInPast)
	})

	t.Run("zero arrival date is a field error", func(t *testing.T) {
		cmd, _ := newReservationCommands(t)
		params := validParams()
		params.ArrivalDate = civil.Date{}

		_, err := cmd.Create(ctx, params)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("departure before arrival", func(t *testing.T) {
		cmd, _ := newReservationCommands(t)
		params := validParams()
		params.ArrivalDate = civil.NewDate(2023, time.January, 17)
		params.DepartureDate = civil.NewDate(2023, time.January, 15)

		_, err := cmd.Create(ctx, params)
		assert.ErrorIs(t, err, reservation.ErrInvalidStayPeriod)
	})

	t.Run("arrival before today is rejected without any lookup", func(t *testing.T) {
		cmd, _ := newReservationCommands(t)
		params := validParams()
		params.ArrivalDate = civil.NewDate(2023, time.January, 9)
		params.DepartureDate = civil.NewDate(2023, time.January, 12)

		_, err := cmd.Create(ctx, params)
		assert.ErrorIs(t, err, errs.ErrArrivalInPast)
	})

	t.Run("arrival equal to today is accepted past the temporal check", func(t *testing.T) {
		cmd, m := newReservationCommands(t)
		params := validParams()
		params.ArrivalDate = civil.NewDate(2023, time.January, 10)
		params.DepartureDate = civil.NewDate(2023, time.January, 11)

		m.guestReads.EXPECT().FindSnapshot(ctx, params.HolderID).Return(nil, notFound())

		_, err := cmd.Create(ctx, params)
		assert.ErrorIs(t, err, errs.ErrGuestNotFound)
	})

	t.Run("unknown holder", func(t *testing.T) {
		cmd, m := newReservationCommands(t)
		params := validParams()

		m.guestReads.EXPECT().FindSnapshot(ctx, params.HolderID).Return(nil, notFound())

		_, err := cmd.Create(ctx, params)
		assert.ErrorIs(t, err, errs.ErrGuestNotFound)
	})

	t.Run("unknown room type", func(t *testing.T) {
		cmd, m := newReservationCommands(t)
		params := validParams()

		m.guestReads.EXPECT().FindSnapshot(ctx, params.HolderID).Return(builder.NewGuestBuilder().BuildSnapshot(), nil)
		m.roomReads.EXPECT().FindRoomType(ctx, params.RoomTypeID).Return(nil, notFound())

		_, err := cmd.Create(ctx, params)
		assert.ErrorIs(t, err, errs.ErrRoomTypeNotFound)
	})

	t.Run("unknown room", func(t *testing.T) {
		cmd, m := newReservationCommands(t)
		params := validParams()

		m.guestReads.EXPECT().FindSnapshot(ctx, params.HolderID).Return(builder.NewGuestBuilder().BuildSnapshot(), nil)
		m.roomReads.EXPECT().FindRoomType(ctx, params.RoomTypeID).Return(builder.NewRoomBuilder().BuildTypeSnapshot(), nil)
		m.roomReads.EXPECT().FindRoom(ctx, params.RoomID).Return(nil, notFound())

		_, err := cmd.Create(ctx, params)
		assert.ErrorIs(t, err, errs.ErrRoomNotFound)
	})

	t.Run("room of a different type", func(t *testing.T) {
		cmd, m := newReservationCommands(t)
		params := validParams()
		mismatched := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.ID = params.RoomID
			b.RoomTypeID = params.RoomTypeID + 1
		}).BuildSnapshot()

		m.guestReads.EXPECT().FindSnapshot(ctx, params.HolderID).Return(builder.NewGuestBuilder().BuildSnapshot(), nil)
		m.roomReads.EXPECT().FindRoomType(ctx, params.RoomTypeID).Return(builder.NewRoomBuilder().BuildTypeSnapshot(), nil)
		m.roomReads.EXPECT().FindRoom(ctx, params.RoomID).Return(mismatched, nil)

		_, err := cmd.Create(ctx, params)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("room occupied in the requested window", func(t *testing.T) {
		cmd, m := newReservationCommands(t)
		params := validParams()

		m.guestReads.EXPECT().FindSnapshot(ctx, params.HolderID).Return(builder.NewGuestBuilder().BuildSnapshot(), nil)
		m.roomReads.EXPECT().FindRoomType(ctx, params.RoomTypeID).Return(builder.NewRoomBuilder().BuildTypeSnapshot(), nil)
		m.roomReads.EXPECT().FindRoom(ctx, params.RoomID).Return(builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.ID = params.RoomID
			b.RoomTypeID = params.RoomTypeID
		}).BuildSnapshot(), nil)
		m.availability.EXPECT().
			FreeRoomsForPeriod(ctx, params.ArrivalDate, params.DepartureDate, gomock.Any()).
			Return([]*queries.RoomView{}, nil)

		_, err := cmd.Create(ctx, params)
		assert.ErrorIs(t, err, errs.ErrRoomUnavailable)
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown reservation", func(t *testing.T) {
		cmd, m := newReservationCommands(t)
		id := builder.NewReservationBuilder().ID

		m.resReads.EXPECT().FindSnapshot(ctx, id).Return(nil, notFound())

		err := cmd.Cancel(ctx, id)
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})

	t.Run("already canceled", func(t *testing.T) {
		cmd, m := newReservationCommands(t)
		b := builder.NewReservationBuilder()

		m.resReads.EXPECT().FindSnapshot(ctx, b.ID).Return(&commands.ReservationSnapshot{
			ID:       b.ID,
			HolderID: b.HolderID,
			Status:   reservation.StatusCanceled,
		}, nil)

		err := cmd.Cancel(ctx, b.ID)
		assert.ErrorIs(t, err, reservation.ErrAlreadyCanceled)
	})
}

func TestSetReservationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid status string", func(t *testing.T) {
		cmd, _ := newReservationCommands(t)

		err := cmd.SetStatus(ctx, builder.NewReservationBuilder().ID, "teleported")
		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		cmd, m := newReservationCommands(t)
		id := builder.NewReservationBuilder().ID

		m.resReads.EXPECT().FindSnapshot(ctx, id).Return(nil, notFound())

		err := cmd.SetStatus(ctx, id, "in_house")
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})
}

func TestExpandNights_UnknownReservation(t *testing.T) {
	ctx := context.Background()
	cmd, m := newReservationCommands(t)
	id := builder.NewReservationBuilder().ID

	m.resReads.EXPECT().FindSnapshot(ctx, id).Return(nil, notFound())

	err := cmd.ExpandNights(ctx, id)
	assert.ErrorIs(t, err, errs.ErrReservationNotFound)
}
