//go:build unit

package reservation_test

import (
	"testing"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStayPeriod(t *testing.T) {
	t.Run("valid period", func(t *testing.T) {
		p, err := reservation.NewStayPeriod(civil.NewDate(2022, 7, 7), civil.NewDate(2022, 7, 9))
		require.NoError(t, err)

		assert.Equal(t, civil.NewDate(2022, 7, 7), p.Arrival())
		assert.Equal(t, civil.NewDate(2022, 7, 9), p.Departure())
	})

	t.Run("arrival equal to departure rejected", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(civil.NewDate(2022, 7, 7), civil.NewDate(2022, 7, 7))
		require.ErrorIs(t, err, reservation.ErrInvalidStayPeriod)
	})

	t.Run("arrival after departure rejected", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(civil.NewDate(2022, 7, 9), civil.NewDate(2022, 7, 7))
		require.ErrorIs(t, err, reservation.ErrInvalidStayPeriod)
	})

	t.Run("zero dates rejected with field name", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(civil.Date{}, civil.NewDate(2022, 7, 9))
		require.ErrorIs(t, err, errs.ErrDomainValidation)

		_, err = reservation.NewStayPeriod(civil.NewDate(2022, 7, 7), civil.Date{})
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestStayPeriodNightCount(t *testing.T) {
	cases := []struct {
		name      string
		arrival   civil.Date
		departure civil.Date
		want      int
	}{
		{"two calendar days span two nights", civil.NewDate(2022, 7, 7), civil.NewDate(2022, 7, 8), 2},
		{"three day example", civil.NewDate(2022, 7, 7), civil.NewDate(2022, 7, 9), 3},
		{"across month boundary", civil.NewDate(2022, 6, 28), civil.NewDate(2022, 7, 2), 5},
		{"across year boundary", civil.NewDate(2022, 12, 30), civil.NewDate(2023, 1, 2), 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := reservation.NewStayPeriod(c.arrival, c.departure)
			require.NoError(t, err)

			assert.Equal(t, c.want, p.NightCount())
			// count must match the inclusive day-number difference
			assert.Equal(t, c.arrival.DaysUntil(c.departure)+1, p.NightCount())
		})
	}
}

func TestStayPeriodDates(t *testing.T) {
	p, err := reservation.NewStayPeriod(civil.NewDate(2022, 7, 7), civil.NewDate(2022, 7, 9))
	require.NoError(t, err)

	dates := p.Dates()
	require.Len(t, dates, 3)
	assert.Equal(t, civil.NewDate(2022, 7, 7), dates[0])
	assert.Equal(t, civil.NewDate(2022, 7, 8), dates[1])
	assert.Equal(t, civil.NewDate(2022, 7, 9), dates[2])

	// contiguity: each date is exactly one day after the previous
	for i := 1; i < len(dates); i++ {
		assert.Equal(t, 1, dates[i-1].DaysUntil(dates[i]))
	}
}

func TestStayPeriodContains(t *testing.T) {
	p, err := reservation.NewStayPeriod(civil.NewDate(2022, 6, 13), civil.NewDate(2022, 6, 15))
	require.NoError(t, err)

	assert.True(t, p.Contains(civil.NewDate(2022, 6, 13)))
	assert.True(t, p.Contains(civil.NewDate(2022, 6, 14)))
	assert.True(t, p.Contains(civil.NewDate(2022, 6, 15)))
	assert.False(t, p.Contains(civil.NewDate(2022, 6, 12)))
	assert.False(t, p.Contains(civil.NewDate(2022, 6, 16)))
}

func TestPartyComposition(t *testing.T) {
	cases := []struct {
		name                        string
		adults, teenagers, children int
		wantField                   string
	}{
		{name: "all zero", adults: 0, teenagers: 0, children: 0},
		{name: "upper bounds", adults: 5, teenagers: 5, children: 5},
		{name: "adults above bound", adults: 6, wantField: "adults"},
		{name: "negative adults", adults: -1, wantField: "adults"},
		{name: "teenagers above bound", teenagers: 6, wantField: "teenagers"},
		{name: "children above bound", children: 6, wantField: "children"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := reservation.NewPartyComposition(c.adults, c.teenagers, c.children)

			if c.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, c.adults+c.teenagers+c.children, p.Total())
				return
			}

			require.ErrorIs(t, err, errs.ErrDomainValidation)
			var fieldErr *errs.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, c.wantField, fieldErr.Field)
		})
	}
}
