package request

import (
	"time"

	"seatwise/internal/domain/capacity"
	"seatwise/internal/usecase/commands"

	"github.com/google/uuid"
)

type EvaluateSeatingRequest struct {
	Date               string     `json:"date" binding:"required"`
	Time               string     `json:"time" binding:"required"`
	PartySize          int        `json:"party_size" binding:"required,min=1"`
	PreSelectedTableID *uuid.UUID `json:"pre_selected_table_id"`
	CustomerName       string     `json:"customer_name" binding:"required,max=200"`
	CustomerPhone      *string    `json:"customer_phone" binding:"omitempty,max=50"`
	CustomerEmail      *string    `json:"customer_email" binding:"omitempty,email"`
	Note               *string    `json:"note" binding:"omitempty,max=1000"`
}

func (r *EvaluateSeatingRequest) ToParams(restaurantID uuid.UUID) (commands.EvaluateSeatingParams, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return commands.EvaluateSeatingParams{}, err
	}

	at, err := capacity.ParseTimeOfDay(r.Time)
	if err != nil {
		return commands.EvaluateSeatingParams{}, err
	}

	return commands.EvaluateSeatingParams{
		RestaurantID:       restaurantID,
		Date:               date,
		Time:               at,
		PartySize:          r.PartySize,
		PreSelectedTableID: r.PreSelectedTableID,
		CustomerName:       r.CustomerName,
		CustomerPhone:      r.CustomerPhone,
		CustomerEmail:      r.CustomerEmail,
		Note:               r.Note,
	}, nil
}
