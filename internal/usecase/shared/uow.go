package shared

import (
	"context"
	"time"

	"seatwise/internal/domain/capacity"
	"seatwise/internal/domain/escalation"
	"seatwise/internal/domain/table"

	"github.com/google/uuid"
)

// UnitOfWork serializes one evaluate-then-write sequence. WithinSlot takes a
// per-restaurant+slot advisory lock before running fn so two concurrent
// requests for the same slot cannot both read the last free table; the unique
// constraint on (table, date, time) remains the lower-layer safety net.
type UnitOfWork interface {
	WithinSlot(ctx context.Context, restaurantID uuid.UUID, date time.Time, at capacity.TimeOfDay, fn func(ctx context.Context, tx Tx) error) error
	// Reads runs against the pool directly, outside any slot lock.
	Reads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Notifications() NotificationRepository
	Waitlist() WaitlistRepository
	Reads() CommandReads
}

// CommandReads are the storage reads a seating decision consumes, executed
// inside the same transaction as the resulting writes.
type CommandReads interface {
	FreeTables(ctx context.Context, restaurantID uuid.UUID, date time.Time, at capacity.TimeOfDay) ([]table.Table, error)
	CapacityRules(ctx context.Context, restaurantID uuid.UUID) ([]capacity.Rule, error)
	BookingsOn(ctx context.Context, restaurantID uuid.UUID, date time.Time) ([]capacity.Booking, error)
	WaitlistEntryByID(ctx context.Context, id uuid.UUID) (*WaitlistEntrySnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, rec NewReservationRecord) (uuid.UUID, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, esc escalation.Escalation) error
}

type WaitlistRepository interface {
	MarkConverted(ctx context.Context, entryID, reservationID uuid.UUID) error
}

// NewReservationRecord is the write model the engine proposes; TableIDs may
// be empty when assignment is left to staff.
type NewReservationRecord struct {
	RestaurantID      uuid.UUID
	Date              time.Time
	Time              capacity.TimeOfDay
	PartySize         int
	Status            string
	CustomerName      string
	CustomerPhone     *string
	CustomerEmail     *string
	Note              *string
	NeedsConfirmation bool
	TableIDs          []uuid.UUID
}

const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
)

type WaitlistEntrySnapshot struct {
	ID            uuid.UUID
	RestaurantID  uuid.UUID
	CustomerName  string
	CustomerPhone *string
	PartySize     int
	RequestedDate time.Time
	RequestedTime capacity.TimeOfDay
	Status        string
}

const (
	WaitlistStatusWaiting   = "waiting"
	WaitlistStatusConverted = "converted"
)
