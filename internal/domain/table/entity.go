package table

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity = errors.New("table capacity must be positive")
	ErrInvalidStatus   = errors.New("invalid table status")
	ErrEmptyNumber     = errors.New("table number cannot be empty")
)

// Table is read-only to the seating engine; inventory management owns writes.
type Table struct {
	id           uuid.UUID
	restaurantID uuid.UUID
	number       string
	capacity     int
	status       Status
	active       bool
}

func Reconstruct(id, restaurantID uuid.UUID, number string, capacity int, status Status, active bool) (Table, error) {
	if number == "" {
		return Table{}, ErrEmptyNumber
	}
	if capacity <= 0 {
		return Table{}, ErrInvalidCapacity
	}
	if !status.IsValid() {
		return Table{}, ErrInvalidStatus
	}
	return Table{
		id:           id,
		restaurantID: restaurantID,
		number:       number,
		capacity:     capacity,
		status:       status,
		active:       active,
	}, nil
}

func (t Table) ID() uuid.UUID           { return t.id }
func (t Table) RestaurantID() uuid.UUID { return t.restaurantID }
func (t Table) Number() string          { return t.number }
func (t Table) Capacity() int           { return t.capacity }
func (t Table) Status() Status          { return t.status }
func (t Table) IsActive() bool          { return t.active }

func (t Table) Seats(partySize int) bool {
	return t.capacity >= partySize
}

func (t Table) SeatsExactly(partySize int) bool {
	return t.capacity == partySize
}
