//go:build unit

package civil_test

import (
	"encoding/json"
	"testing"
	"time"

	"hotel-frontdesk/internal/pkg/civil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOfDiscardsTimeAndLocation(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	d := civil.DateOf(time.Date(2022, 7, 7, 23, 45, 12, 0, loc))

	assert.Equal(t, "2022-07-07", d.String())
	assert.Equal(t, d, civil.NewDate(2022, time.July, 7))
}

func TestDayNumberArithmetic(t *testing.T) {
	arrival := civil.NewDate(2022, 7, 7)
	departure := civil.NewDate(2022, 7, 9)

	assert.Equal(t, 2, arrival.DaysUntil(departure))
	assert.Equal(t, -2, departure.DaysUntil(arrival))
	assert.Equal(t, departure, arrival.AddDays(2))
}

func TestDayNumberAcrossMonthBoundary(t *testing.T) {
	d := civil.NewDate(2022, 6, 30)
	assert.Equal(t, civil.NewDate(2022, 7, 1), d.AddDays(1))
	assert.Equal(t, 1, d.DaysUntil(civil.NewDate(2022, 7, 1)))
}

func TestOrdering(t *testing.T) {
	a := civil.NewDate(2023, 1, 9)
	b := civil.NewDate(2023, 1, 10)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a.AddDays(0)))
}

func TestJSONRoundTrip(t *testing.T) {
	d := civil.NewDate(2022, 6, 14)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2022-06-14"`, string(raw))

	var decoded civil.Date
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, d, decoded)
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := civil.ParseDate("14/06/2022")
	require.Error(t, err)

	_, err = civil.ParseDate("")
	require.Error(t, err)
}
