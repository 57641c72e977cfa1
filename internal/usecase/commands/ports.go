package commands

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/guest"
	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/civil"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types
// (CQRS separation)

type GuestSnapshot struct {
	ID       uuid.UUID
	FullName string
}

type RoomSnapshot struct {
	ID         int32
	Number     string
	RoomTypeID int32
}

type RoomTypeSnapshot struct {
	ID   int32
	Name string
}

type ReservationSnapshot struct {
	ID            uuid.UUID
	HolderID      uuid.UUID
	ArrivalDate   civil.Date
	DepartureDate civil.Date
	Status        reservation.Status
	RoomTypeID    int32
	RoomID        int32
}

type StaffCredentials struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
}

// Command-side reads: lightweight, soft-delete-aware existence lookups
// used for referential validation before a write.

type GuestCommandReads interface {
	FindSnapshot(ctx context.Context, id uuid.UUID) (*GuestSnapshot, error)
	FindProfile(ctx context.Context, id uuid.UUID) (*guest.Profile, error)
}

type RoomCommandReads interface {
	FindRoom(ctx context.Context, id int32) (*RoomSnapshot, error)
	FindRoomType(ctx context.Context, id int32) (*RoomTypeSnapshot, error)
}

type ReservationCommandReads interface {
	FindSnapshot(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
}

type StaffCommandReads interface {
	FindByEmail(ctx context.Context, email string) (*StaffCredentials, error)
}

// Write repositories take a db.DBTX so the usecase controls the
// transaction boundary.

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error
	SoftDelete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

// NightLedgerRepository owns the per-night occupancy rows. CreateBatch is
// all-or-nothing; callers must probe HasNights first to keep expansion
// exactly-once.
type NightLedgerRepository interface {
	HasNights(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) (bool, error)
	CreateBatch(ctx context.Context, tx db.DBTX, nights []reservation.Night) error
	DeleteForReservation(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) error
}

type RoomRepository interface {
	CreateType(ctx context.Context, tx db.DBTX, rt *room.RoomType) (int32, error)
	Create(ctx context.Context, tx db.DBTX, r *room.Room) (int32, error)
	Retire(ctx context.Context, tx db.DBTX, id int32) error
}

type GuestRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *guest.Profile) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, p *guest.Profile) error
	SoftDelete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type StaffRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, staffID uuid.UUID) error
}
