package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID                uuid.UUID   `json:"id"`
	RestaurantID      uuid.UUID   `json:"restaurant_id"`
	Date              string      `json:"date"`
	Time              string      `json:"time"`
	PartySize         int         `json:"party_size"`
	Status            string      `json:"status"`
	CustomerName      string      `json:"customer_name"`
	CustomerPhone     *string     `json:"customer_phone,omitempty"`
	CustomerEmail     *string     `json:"customer_email,omitempty"`
	Note              *string     `json:"note,omitempty"`
	NeedsConfirmation bool        `json:"needs_confirmation"`
	Tables            []TableView `json:"tables"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

type ReservationListItem struct {
	ID           uuid.UUID `json:"id"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	PartySize    int       `json:"party_size"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type TableView struct {
	ID          uuid.UUID `json:"id"`
	TableNumber string    `json:"table_number"`
	Capacity    int       `json:"capacity"`
	Status      string    `json:"status"`
	IsActive    bool      `json:"is_active"`
}

type CapacityRuleView struct {
	ID               uuid.UUID `json:"id"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	SlotLengthMin    int       `json:"slot_length_min"`
	MaxGuestsPerSlot int       `json:"max_guests_per_slot"`
	CreatedAt        time.Time `json:"created_at"`
}

type NotificationView struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Topic     string          `json:"topic"`
	Payload   json.RawMessage `json:"payload"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type WaitlistEntryView struct {
	ID            uuid.UUID  `json:"id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone *string    `json:"customer_phone,omitempty"`
	PartySize     int        `json:"party_size"`
	RequestedDate string     `json:"requested_date"`
	RequestedTime string     `json:"requested_time"`
	Status        string     `json:"status"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
