package commands

import (
	"context"

	"hotel-frontdesk/internal/domain/staff"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/pkg/jwt"
	"hotel-frontdesk/internal/pkg/password"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAuthenticationFailed = errs.New("invalid email or password")
	ErrAccountInactive      = errs.New("account is inactive")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommands struct {
	pool       *pgxpool.Pool
	staffReads StaffCommandReads
	staffRepo  StaffRepository
	tokens     *jwt.Service
}

func NewAuthCommands(pool *pgxpool.Pool, staffReads StaffCommandReads, staffRepo StaffRepository, tokens *jwt.Service) AuthCommands {
	return &authCommands{
		pool:       pool,
		staffReads: staffReads,
		staffRepo:  staffRepo,
		tokens:     tokens,
	}
}

// Login deliberately reports the same error for an unknown email and a
// wrong password.
func (c *authCommands) Login(ctx context.Context, email, rawPassword string) (*TokenPair, error) {
	creds, err := c.staffReads.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !creds.IsActive {
		return nil, ErrAccountInactive
	}
	if err := password.ComparePassword(creds.PasswordHash, rawPassword); err != nil {
		return nil, ErrAuthenticationFailed
	}

	role, err := staff.NewRole(creds.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	pair, err := c.issueTokens(creds.ID, role)
	if err != nil {
		return nil, err
	}

	if _, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.staffRepo.UpdateLastLogin(ctx, tx, creds.ID)
	}); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return pair, nil
}

func (c *authCommands) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := c.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return nil, jwt.ErrInvalidToken
	}
	return c.issueTokens(claims.StaffID, role)
}

func (c *authCommands) issueTokens(staffID uuid.UUID, role staff.Role) (*TokenPair, error) {
	access, err := c.tokens.GenerateAccessToken(staffID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign access token")
	}
	refresh, err := c.tokens.GenerateRefreshToken(staffID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign refresh token")
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
