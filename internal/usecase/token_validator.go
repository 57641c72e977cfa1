package usecase

import (
	"context"

	"hotel-frontdesk/internal/pkg/jwt"
	"hotel-frontdesk/internal/usecase/queries"
)

// TokenValidator authenticates a bearer token and confirms the staff
// member behind it still exists and is active. Tokens outlive account
// deactivation, so the database is the authority, not the claims.
type TokenValidator struct {
	tokens *jwt.Service
	staff  queries.StaffQueries
}

func NewTokenValidator(tokens *jwt.Service, staff queries.StaffQueries) *TokenValidator {
	return &TokenValidator{tokens: tokens, staff: staff}
}

func (v *TokenValidator) Validate(ctx context.Context, token string) (*queries.AuthorizedStaffView, error) {
	claims, err := v.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	view, err := v.staff.GetByID(ctx, claims.StaffID)
	if err != nil {
		return nil, err
	}
	if !view.IsActive {
		return nil, jwt.ErrInvalidToken
	}
	return view, nil
}
