package response

import (
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	Message string `json:"message"`
}

type StaffResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func FromStaffView(rm *queries.AuthorizedStaffView) *StaffResponse {
	return &StaffResponse{
		ID:    rm.ID,
		Email: rm.Email,
		Role:  rm.Role,
	}
}
