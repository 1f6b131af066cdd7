package response

import (
	"seatwise/internal/usecase/queries"
)

type TableResponse struct {
	ID          string `json:"id"`
	TableNumber string `json:"table_number"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status"`
	IsActive    bool   `json:"is_active"`
}

type ReservationResponse struct {
	ID                string          `json:"id"`
	Date              string          `json:"date"`
	Time              string          `json:"time"`
	PartySize         int             `json:"party_size"`
	Status            string          `json:"status"`
	CustomerName      string          `json:"customer_name"`
	CustomerPhone     *string         `json:"customer_phone,omitempty"`
	CustomerEmail     *string         `json:"customer_email,omitempty"`
	Note              *string         `json:"note,omitempty"`
	NeedsConfirmation bool            `json:"needs_confirmation"`
	Tables            []TableResponse `json:"tables"`
	CreatedAt         int64           `json:"created_at"`
	UpdatedAt         int64           `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                v.ID.String(),
		Date:              v.Date,
		Time:              v.Time,
		PartySize:         v.PartySize,
		Status:            v.Status,
		CustomerName:      v.CustomerName,
		CustomerPhone:     v.CustomerPhone,
		CustomerEmail:     v.CustomerEmail,
		Note:              v.Note,
		NeedsConfirmation: v.NeedsConfirmation,
		Tables:            FromTableViews(v.Tables),
		CreatedAt:         v.CreatedAt.Unix(),
		UpdatedAt:         v.UpdatedAt.Unix(),
	}
}

type ReservationListItemResponse struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PartySize    int    `json:"party_size"`
	Status       string `json:"status"`
	CustomerName string `json:"customer_name"`
	CreatedAt    int64  `json:"created_at"`
}

func FromReservationList(items []queries.ReservationListItem) []ReservationListItemResponse {
	res := make([]ReservationListItemResponse, len(items))
	for i, it := range items {
		res[i] = ReservationListItemResponse{
			ID:           it.ID.String(),
			Date:         it.Date,
			Time:         it.Time,
			PartySize:    it.PartySize,
			Status:       it.Status,
			CustomerName: it.CustomerName,
			CreatedAt:    it.CreatedAt.Unix(),
		}
	}
	return res
}

func FromTableViews(views []queries.TableView) []TableResponse {
	res := make([]TableResponse, len(views))
	for i, v := range views {
		res[i] = TableResponse{
			ID:          v.ID.String(),
			TableNumber: v.TableNumber,
			Capacity:    v.Capacity,
			Status:      v.Status,
			IsActive:    v.IsActive,
		}
	}
	return res
}
