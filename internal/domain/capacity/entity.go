package capacity

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow     = errors.New("window start must be before end")
	ErrInvalidSlotLength = errors.New("slot length must be positive")
	ErrInvalidMaxGuests  = errors.New("max guests per slot must be positive")
)

// Rule caps the total party-size sum per slot inside a named time window.
// Windows are not guaranteed non-overlapping; the guard uses the first match.
type Rule struct {
	id               uuid.UUID
	restaurantID     uuid.UUID
	name             string
	start            TimeOfDay
	end              TimeOfDay
	slotLengthMin    int
	maxGuestsPerSlot int
}

func NewRule(id, restaurantID uuid.UUID, name string, start, end TimeOfDay, slotLengthMin, maxGuestsPerSlot int) (Rule, error) {
	if !start.Before(end) {
		return Rule{}, ErrInvalidWindow
	}
	if slotLengthMin <= 0 {
		return Rule{}, ErrInvalidSlotLength
	}
	if maxGuestsPerSlot <= 0 {
		return Rule{}, ErrInvalidMaxGuests
	}
	return Rule{
		id:               id,
		restaurantID:     restaurantID,
		name:             name,
		start:            start,
		end:              end,
		slotLengthMin:    slotLengthMin,
		maxGuestsPerSlot: maxGuestsPerSlot,
	}, nil
}

func (r Rule) ID() uuid.UUID         { return r.id }
func (r Rule) RestaurantID() uuid.UUID { return r.restaurantID }
func (r Rule) Name() string          { return r.name }
func (r Rule) Start() TimeOfDay      { return r.start }
func (r Rule) End() TimeOfDay        { return r.end }
func (r Rule) SlotLengthMin() int    { return r.slotLengthMin }
func (r Rule) MaxGuestsPerSlot() int { return r.maxGuestsPerSlot }

// Contains reports whether t falls inside the window, both ends inclusive.
func (r Rule) Contains(t TimeOfDay) bool {
	return !t.Before(r.start) && !t.After(r.end)
}

// Slot returns the boundaries of the slot enclosing t.
func (r Rule) Slot(t TimeOfDay) (start, end TimeOfDay) {
	start = t.Floor(r.slotLengthMin)
	end = start.Add(r.slotLengthMin)
	return start, end
}
