package response

import (
	"encoding/json"
	"time"

	"seatwise/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Topic     string          `json:"topic"`
	Payload   json.RawMessage `json:"payload"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type WaitlistEntryResponse struct {
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

func FromNotificationViews(views []queries.NotificationView) []NotificationResponse {
	res := make([]NotificationResponse, len(views))
	_ = copier.Copy(&res, &views)
	return res
}

func FromWaitlistViews(views []queries.WaitlistEntryView) []WaitlistEntryResponse {
	res := make([]WaitlistEntryResponse, len(views))
	_ = copier.Copy(&res, &views)
	return res
}
