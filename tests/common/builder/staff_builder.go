//go:build unit || e2e

package builder

import (
	reqdto "hotel-frontdesk/internal/handler/dto/request"
	"hotel-frontdesk/internal/pkg/password"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffBuilder struct {
	ID       uuid.UUID
	Email    string
	Password string
	Role     string
	IsActive bool
}

func NewStaffBuilder() *StaffBuilder {
	return &StaffBuilder{
		ID:       uuid.New(),
		Email:    "frontdesk@example.com",
		Password: "Passw0rd!",
		Role:     "receptionist",
		IsActive: true,
	}
}

func (b *StaffBuilder) With(mutate func(*StaffBuilder)) *StaffBuilder {
	mutate(b)
	return b
}

func (b *StaffBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *StaffBuilder) BuildView() *queries.AuthorizedStaffView {
	return &queries.AuthorizedStaffView{
		ID:       b.ID,
		Email:    b.Email,
		Role:     b.Role,
		IsActive: b.IsActive,
	}
}

func (b *StaffBuilder) BuildCredentials() *commands.StaffCredentials {
	hash, err := password.HashPassword(b.Password)
	if err != nil {
		panic(err)
	}
	return &commands.StaffCredentials{
		ID:           b.ID,
		Email:        b.Email,
		PasswordHash: hash,
		Role:         b.Role,
		IsActive:     b.IsActive,
	}
}
