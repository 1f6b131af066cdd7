package response

import (
	"seatwise/internal/usecase/commands"

	"github.com/google/uuid"
)

type AssignedTableResponse struct {
	ID       uuid.UUID `json:"id"`
	Number   string    `json:"number"`
	Capacity int       `json:"capacity"`
}

type CombinationResponse struct {
	Tables        []AssignedTableResponse `json:"tables"`
	TotalCapacity int                     `json:"total_capacity"`
	Exact         bool                    `json:"exact"`
}

type CapacityFiguresResponse struct {
	CurrentGuests int    `json:"current_guests"`
	MaxGuests     int    `json:"max_guests"`
	SlotStart     string `json:"slot_start"`
	SlotEnd       string `json:"slot_end"`
}

type AssignmentOutcomeResponse struct {
	Kind           string                   `json:"kind"`
	ReservationID  *uuid.UUID               `json:"reservation_id,omitempty"`
	AssignedTables []AssignedTableResponse  `json:"assigned_tables,omitempty"`
	Proposed       *CombinationResponse     `json:"proposed,omitempty"`
	Candidates     []CombinationResponse    `json:"candidates,omitempty"`
	AutoApplied    bool                     `json:"auto_applied"`
	Capacity       *CapacityFiguresResponse `json:"capacity,omitempty"`
}

func FromAssignmentOutcome(out *commands.AssignmentOutcome) *AssignmentOutcomeResponse {
	resp := &AssignmentOutcomeResponse{
		Kind:           string(out.Kind),
		ReservationID:  out.ReservationID,
		AssignedTables: fromAssignedTables(out.AssignedTables),
		Candidates:     fromCombinations(out.Candidates),
		AutoApplied:    out.AutoApplied,
	}

	if out.Proposed != nil {
		p := fromCombination(*out.Proposed)
		resp.Proposed = &p
	}
	if out.Capacity != nil {
		resp.Capacity = &CapacityFiguresResponse{
			CurrentGuests: out.Capacity.CurrentGuests,
			MaxGuests:     out.Capacity.MaxGuests,
			SlotStart:     out.Capacity.SlotStart,
			SlotEnd:       out.Capacity.SlotEnd,
		}
	}

	return resp
}

func fromAssignedTables(tables []commands.AssignedTable) []AssignedTableResponse {
	if len(tables) == 0 {
		return nil
	}
	res := make([]AssignedTableResponse, len(tables))
	for i, t := range tables {
		res[i] = AssignedTableResponse{ID: t.ID, Number: t.Number, Capacity: t.Capacity}
	}
	return res
}

func fromCombination(c commands.CandidateCombination) CombinationResponse {
	return CombinationResponse{
		Tables:        fromAssignedTables(c.Tables),
		TotalCapacity: c.TotalCapacity,
		Exact:         c.Exact,
	}
}

func fromCombinations(combos []commands.CandidateCombination) []CombinationResponse {
	if len(combos) == 0 {
		return nil
	}
	res := make([]CombinationResponse, len(combos))
	for i, c := range combos {
		res[i] = fromCombination(c)
	}
	return res
}
