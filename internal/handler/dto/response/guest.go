package response

import (
	"time"

	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GuestResponse struct {
	ID              uuid.UUID   `json:"id"`
	FirstName       string      `json:"firstName"`
	MiddleName      *string     `json:"middleName,omitempty"`
	LastName        string      `json:"lastName"`
	Birthdate       *civil.Date `json:"birthdate,omitempty"`
	Gender          string      `json:"gender"`
	Nationality     string      `json:"nationality"`
	NationalityCode string      `json:"nationalityCode"`
	Address         *string     `json:"address,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func FromGuestView(rm *queries.GuestView) *GuestResponse {
	var resp GuestResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
