package staff

import (
	"time"

	"github.com/google/uuid"
)

// Member is a front-desk user who can sign in to the application.
type Member struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	isActive     bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewMember(email Email, passwordHash string, role Role) *Member {
	return &Member{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func ReconstructMember(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	isActive bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *Member {
	return &Member{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (m *Member) ID() uuid.UUID         { return m.id }
func (m *Member) Email() Email          { return m.email }
func (m *Member) PasswordHash() string  { return m.passwordHash }
func (m *Member) Role() Role            { return m.role }
func (m *Member) IsActive() bool        { return m.isActive }
func (m *Member) LastLogin() *time.Time { return m.lastLogin }
func (m *Member) CreatedAt() time.Time  { return m.createdAt }
func (m *Member) UpdatedAt() time.Time  { return m.updatedAt }
