//go:build unit || e2e

package builder

import (
	"time"

	reqdto "hotel-frontdesk/internal/handler/dto/request"
	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestBuilder struct {
	ID          uuid.UUID
	FirstName   string
	MiddleName  string
	LastName    string
	Birthdate   civil.Date
	Gender      string
	Nationality string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewGuestBuilder() *GuestBuilder {
	now := time.Now()
	return &GuestBuilder{
		ID:          uuid.New(),
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Birthdate:   civil.NewDate(1990, time.December, 10),
		Gender:      "female",
		Nationality: "United Kingdom",
		Address:     "12 St James's Square, London",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(b)
	return b
}

func (b *GuestBuilder) BuildRequestDTO() reqdto.GuestProfileRequest {
	return reqdto.GuestProfileRequest{
		FirstName:   b.FirstName,
		MiddleName:  b.MiddleName,
		LastName:    b.LastName,
		Birthdate:   b.Birthdate,
		Gender:      b.Gender,
		Nationality: b.Nationality,
		Address:     b.Address,
	}
}

func (b *GuestBuilder) BuildParams() commands.GuestProfileParams {
	return commands.GuestProfileParams{
		FirstName:   b.FirstName,
		MiddleName:  b.MiddleName,
		LastName:    b.LastName,
		Birthdate:   b.Birthdate,
		Gender:      b.Gender,
		Nationality: b.Nationality,
		Address:     b.Address,
	}
}

func (b *GuestBuilder) BuildView() *queries.GuestView {
	view := &queries.GuestView{
		ID:          b.ID,
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Gender:      b.Gender,
		Nationality: b.Nationality,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.MiddleName != "" {
		view.MiddleName = &b.MiddleName
	}
	if !b.Birthdate.IsZero() {
		bd := b.Birthdate
		view.Birthdate = &bd
	}
	if b.Address != "" {
		view.Address = &b.Address
	}
	return view
}

func (b *GuestBuilder) BuildSnapshot() *commands.GuestSnapshot {
	return &commands.GuestSnapshot{
		ID:       b.ID,
		FullName: b.FirstName + " " + b.LastName,
	}
}
