//go:build unit

package guest_test

import (
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/guest"
	"hotel-frontdesk/internal/pkg/civil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

func newDirectory() *guest.NationalityDirectory {
	return guest.NewNationalityDirectory(guest.DefaultNationalities())
}

type profileCase struct {
	name        string
	firstName   string
	lastName    string
	gender      guest.Gender
	nationality string
	birthdate   civil.Date
	errIs       error
}

func TestNewProfile(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		p, err := guest.NewProfile(
			newDirectory(),
			"Maria", "Elena", "Petrova",
			civil.NewDate(1990, 4, 12),
			guest.GenderFemale,
			"Bulgarian",
			"12 Vitosha Blvd, Sofia",
			now,
		)
		require.NoError(t, err)
		require.NotNil(t, p)

		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, "BG", p.NationalityCode())
		assert.Equal(t, "Maria Elena Petrova", p.FullName())
		assert.False(t, p.IsDeleted())
	})

	cases := []profileCase{
		{
			name: "empty first name", firstName: "", lastName: "Petrova",
			gender: guest.GenderFemale, nationality: "Bulgarian",
			errIs: guest.ErrEmptyFirstName,
		},
		{
			name: "empty last name", firstName: "Maria", lastName: "  ",
			gender: guest.GenderFemale, nationality: "Bulgarian",
			errIs: guest.ErrEmptyLastName,
		},
		{
			name: "invalid gender", firstName: "Maria", lastName: "Petrova",
			gender: guest.Gender("other"), nationality: "Bulgarian",
			errIs: guest.ErrInvalidGender,
		},
		{
			name: "unknown nationality", firstName: "Maria", lastName: "Petrova",
			gender: guest.GenderFemale, nationality: "Atlantean",
			errIs: guest.ErrUnknownNationality,
		},
		{
			name: "future birthdate", firstName: "Maria", lastName: "Petrova",
			gender: guest.GenderFemale, nationality: "Bulgarian",
			birthdate: civil.NewDate(2031, 1, 1),
			errIs:     guest.ErrBirthdateInFuture,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := guest.NewProfile(
				newDirectory(),
				c.firstName, "", c.lastName,
				c.birthdate,
				c.gender,
				c.nationality,
				"",
				now,
			)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestNationalityDirectory(t *testing.T) {
	d := newDirectory()

	t.Run("resolution is case and whitespace insensitive", func(t *testing.T) {
		code, err := d.Resolve("  bulgarian ")
		require.NoError(t, err)
		assert.Equal(t, "BG", code)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := d.Resolve("Martian")
		require.ErrorIs(t, err, guest.ErrUnknownNationality)
		assert.False(t, d.Contains("Martian"))
	})

	t.Run("names are sorted", func(t *testing.T) {
		names := d.Names()
		require.NotEmpty(t, names)
		for i := 1; i < len(names); i++ {
			assert.LessOrEqual(t, names[i-1], names[i])
		}
	})

	t.Run("names keep their display casing", func(t *testing.T) {
		names := d.Names()
		assert.Contains(t, names, "British")
		assert.NotContains(t, names, "british")
	})
}
