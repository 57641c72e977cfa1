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

type ReservationBuilder struct {
	ID            uuid.UUID
	HolderID      uuid.UUID
	HolderName    string
	ArrivalDate   civil.Date
	DepartureDate civil.Date
	Status        string
	RoomTypeID    int32
	RoomTypeName  string
	RoomID        int32
	RoomNumber    string
	Adults        int
	Teenagers     int
	Children      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		ID:            uuid.New(),
		HolderID:      uuid.New(),
		HolderName:    "Ada Lovelace",
		ArrivalDate:   civil.NewDate(2026, time.September, 10),
		DepartureDate: civil.NewDate(2026, time.September, 12),
		Status:        "expected",
		RoomTypeID:    1,
		RoomTypeName:  "Standard Double",
		RoomID:        101,
		RoomNumber:    "101",
		Adults:        2,
		Teenagers:     0,
		Children:      0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		HolderID:      b.HolderID,
		ArrivalDate:   b.ArrivalDate,
		DepartureDate: b.DepartureDate,
		RoomTypeID:    b.RoomTypeID,
		RoomID:        b.RoomID,
		Adults:        b.Adults,
		Teenagers:     b.Teenagers,
		Children:      b.Children,
	}
}

func (b *ReservationBuilder) BuildParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		HolderID:      b.HolderID,
		ArrivalDate:   b.ArrivalDate,
		DepartureDate: b.DepartureDate,
		RoomTypeID:    b.RoomTypeID,
		RoomID:        b.RoomID,
		Adults:        b.Adults,
		Teenagers:     b.Teenagers,
		Children:      b.Children,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:            b.ID,
		HolderID:      b.HolderID,
		HolderName:    b.HolderName,
		ArrivalDate:   b.ArrivalDate,
		DepartureDate: b.DepartureDate,
		Status:        b.Status,
		RoomTypeID:    b.RoomTypeID,
		RoomTypeName:  b.RoomTypeName,
		RoomID:        b.RoomID,
		RoomNumber:    b.RoomNumber,
		Adults:        int32(b.Adults),
		Teenagers:     int32(b.Teenagers),
		Children:      int32(b.Children),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:            b.ID,
		HolderName:    b.HolderName,
		ArrivalDate:   b.ArrivalDate,
		DepartureDate: b.DepartureDate,
		Status:        b.Status,
		RoomNumber:    b.RoomNumber,
		CreatedAt:     b.CreatedAt,
	}
}

// BuildNightViews expands the stay into one view per calendar night,
// both endpoints included.
func (b *ReservationBuilder) BuildNightViews() []*queries.NightView {
	views := make([]*queries.NightView, 0)
	for d := b.ArrivalDate; !d.After(b.DepartureDate); d = d.AddDays(1) {
		views = append(views, &queries.NightView{
			ID:            uuid.New(),
			ReservationID: b.ID,
			RoomID:        b.RoomID,
			RoomNumber:    b.RoomNumber,
			RoomTypeID:    b.RoomTypeID,
			RoomTypeName:  b.RoomTypeName,
			Date:          d,
		})
	}
	return views
}
