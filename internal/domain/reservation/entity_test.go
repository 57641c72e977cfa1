//go:build unit

package reservation_test

import (
	"testing"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/pkg/civil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStay(t *testing.T, arrival, departure civil.Date) reservation.StayPeriod {
	t.Helper()
	p, err := reservation.NewStayPeriod(arrival, departure)
	require.NoError(t, err)
	return p
}

func mustParty(t *testing.T, adults, teenagers, children int) reservation.PartyComposition {
	t.Helper()
	p, err := reservation.NewPartyComposition(adults, teenagers, children)
	require.NoError(t, err)
	return p
}

func TestNewReservation(t *testing.T) {
	today := civil.NewDate(2023, 1, 10)
	holder := uuid.New()

	t.Run("arrival today is accepted", func(t *testing.T) {
		res, err := reservation.NewReservation(
			holder,
			mustStay(t, today, today.AddDays(2)),
			1, 3,
			mustParty(t, 2, 0, 1),
			today,
		)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, holder, res.HolderID())
		assert.Equal(t, reservation.StatusExpected, res.Status())
		assert.Equal(t, int32(3), res.RoomID())
		assert.False(t, res.IsCanceled())
	})

	t.Run("arrival yesterday is rejected", func(t *testing.T) {
		_, err := reservation.NewReservation(
			holder,
			mustStay(t, today.AddDays(-1), today),
			1, 3,
			mustParty(t, 1, 0, 0),
			today,
		)
		require.ErrorIs(t, err, reservation.ErrPastArrival)
	})

	t.Run("departure in the past is irrelevant when arrival is not", func(t *testing.T) {
		// only the arrival date participates in the temporal check
		res, err := reservation.NewReservation(
			holder,
			mustStay(t, today, today.AddDays(1)),
			1, 3,
			mustParty(t, 1, 0, 0),
			today,
		)
		require.NoError(t, err)
		require.NotNil(t, res)
	})
}

func TestReservationStatus(t *testing.T) {
	today := civil.NewDate(2023, 1, 10)
	res, err := reservation.NewReservation(
		uuid.New(),
		mustStay(t, today, today.AddDays(1)),
		1, 3,
		mustParty(t, 1, 0, 0),
		today,
	)
	require.NoError(t, err)

	t.Run("valid transition", func(t *testing.T) {
		require.NoError(t, res.SetStatus(reservation.StatusArriving))
		assert.Equal(t, reservation.StatusArriving, res.Status())
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		err := res.SetStatus(reservation.Status("checked_in"))
		require.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})

	t.Run("cancel twice fails", func(t *testing.T) {
		require.NoError(t, res.Cancel())
		assert.True(t, res.IsCanceled())
		require.ErrorIs(t, res.Cancel(), reservation.ErrAlreadyCanceled)
	})
}

func TestExpandNights(t *testing.T) {
	today := civil.NewDate(2022, 7, 1)

	t.Run("one night per inclusive date", func(t *testing.T) {
		res, err := reservation.NewReservation(
			uuid.New(),
			mustStay(t, civil.NewDate(2022, 7, 7), civil.NewDate(2022, 7, 9)),
			1, 3,
			mustParty(t, 2, 0, 0),
			today,
		)
		require.NoError(t, err)

		nights := res.ExpandNights()
		require.Len(t, nights, 3)

		wantDates := []civil.Date{
			civil.NewDate(2022, 7, 7),
			civil.NewDate(2022, 7, 8),
			civil.NewDate(2022, 7, 9),
		}
		for i, n := range nights {
			assert.Equal(t, res.ID(), n.ReservationID())
			assert.Equal(t, int32(3), n.RoomID())
			assert.Equal(t, wantDates[i], n.Date())
			assert.NotEqual(t, uuid.Nil, n.ID())
		}
	})

	t.Run("night count matches day-number difference for longer stays", func(t *testing.T) {
		stay := mustStay(t, civil.NewDate(2022, 12, 28), civil.NewDate(2023, 1, 5))
		res, err := reservation.NewReservation(uuid.New(), stay, 1, 7, mustParty(t, 1, 0, 0), today)
		require.NoError(t, err)

		nights := res.ExpandNights()
		assert.Len(t, nights, stay.Arrival().DaysUntil(stay.Departure())+1)
	})
}
