package request

import (
	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/usecase/commands"
)

type GuestProfileRequest struct {
	FirstName   string     `json:"first_name" binding:"required"`
	MiddleName  string     `json:"middle_name"`
	LastName    string     `json:"last_name" binding:"required"`
	Birthdate   civil.Date `json:"birthdate"`
	Gender      string     `json:"gender" binding:"required"`
	Nationality string     `json:"nationality" binding:"required"`
	Address     string     `json:"address"`
}

func (r GuestProfileRequest) ToParams() commands.GuestProfileParams {
	return commands.GuestProfileParams{
		FirstName:   r.FirstName,
		MiddleName:  r.MiddleName,
		LastName:    r.LastName,
		Birthdate:   r.Birthdate,
		Gender:      r.Gender,
		Nationality: r.Nationality,
		Address:     r.Address,
	}
}
