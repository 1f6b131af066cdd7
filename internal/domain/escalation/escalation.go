// Package escalation shapes the records staff see when a seating decision
// needs human attention. Each kind carries its own payload variant so callers
// never probe an untyped bag; delivery is the notification collaborator's job.
package escalation

import (
	"encoding/json"
	"fmt"

	"seatwise/internal/domain/seating"

	"github.com/google/uuid"
)

// Escalation is a decision record requiring staff action. Exactly one payload
// field is populated, matching Kind.
type Escalation struct {
	Kind         Kind
	RestaurantID uuid.UUID
	Summary      string

	CombinationNeeded *CombinationNeededPayload
	CapacityExceeded  *CapacityExceededPayload
	ManualAssignment  *ManualAssignmentPayload
	LargeParty        *LargePartyPayload
	Waitlist          *WaitlistConversionPayload
}

// CombinationOption is the serializable form of a seating.Combination.
type CombinationOption struct {
	TableIDs      []uuid.UUID `json:"table_ids"`
	TableNumbers  []string    `json:"table_numbers"`
	TotalCapacity int         `json:"total_capacity"`
	Exact         bool        `json:"exact"`
}

type CombinationNeededPayload struct {
	CustomerName string              `json:"customer_name"`
	PartySize    int                 `json:"party_size"`
	Proposed     *CombinationOption  `json:"proposed,omitempty"`
	AutoApplied  bool                `json:"auto_applied"`
	Candidates   []CombinationOption `json:"candidates"`
}

type CapacityExceededPayload struct {
	CustomerName  string `json:"customer_name"`
	PartySize     int    `json:"party_size"`
	CurrentGuests int    `json:"current_guests"`
	MaxGuests     int    `json:"max_guests"`
	SlotStart     string `json:"slot_start"`
	SlotEnd       string `json:"slot_end"`
}

type ManualAssignmentPayload struct {
	CustomerName string              `json:"customer_name"`
	PartySize    int                 `json:"party_size"`
	Candidates   []CombinationOption `json:"candidates"`
}

type LargePartyPayload struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	PartySize     int    `json:"party_size"`
	RequestedDate string `json:"requested_date"`
	RequestedTime string `json:"requested_time"`
	Note          string `json:"note,omitempty"`
}

type WaitlistConversionPayload struct {
	EntryID      uuid.UUID `json:"entry_id"`
	CustomerName string    `json:"customer_name"`
	PartySize    int       `json:"party_size"`
	Outcome      string    `json:"outcome"`
}

func NewCombinationNeeded(restaurantID uuid.UUID, customerName string, partySize int, proposed *seating.Combination, autoApplied bool, candidates []seating.Combination) Escalation {
	return Escalation{
		Kind:         KindCombinationNeeded,
		RestaurantID: restaurantID,
		Summary:      fmt.Sprintf("party of %d for %s needs combined tables", partySize, customerName),
		CombinationNeeded: &CombinationNeededPayload{
			CustomerName: customerName,
			PartySize:    partySize,
			Proposed:     optionPtr(proposed),
			AutoApplied:  autoApplied,
			Candidates:   toOptions(candidates),
		},
	}
}

func NewCapacityExceeded(restaurantID uuid.UUID, customerName string, partySize, currentGuests, maxGuests int, slotStart, slotEnd string) Escalation {
	return Escalation{
		Kind:         KindCapacityExceeded,
		RestaurantID: restaurantID,
		Summary: fmt.Sprintf("slot %s-%s is full: %d booked of %d, party of %d rejected",
			slotStart, slotEnd, currentGuests, maxGuests, partySize),
		CapacityExceeded: &CapacityExceededPayload{
			CustomerName:  customerName,
			PartySize:     partySize,
			CurrentGuests: currentGuests,
			MaxGuests:     maxGuests,
			SlotStart:     slotStart,
			SlotEnd:       slotEnd,
		},
	}
}

func NewManualAssignmentRequired(restaurantID uuid.UUID, customerName string, partySize int, candidates []seating.Combination) Escalation {
	return Escalation{
		Kind:         KindManualAssignmentRequired,
		RestaurantID: restaurantID,
		Summary:      fmt.Sprintf("party of %d for %s needs manual seating", partySize, customerName),
		ManualAssignment: &ManualAssignmentPayload{
			CustomerName: customerName,
			PartySize:    partySize,
			Candidates:   toOptions(candidates),
		},
	}
}

func NewLargePartyRequest(restaurantID uuid.UUID, payload LargePartyPayload) Escalation {
	return Escalation{
		Kind:         KindLargePartyRequest,
		RestaurantID: restaurantID,
		Summary: fmt.Sprintf("large party request: %d guests for %s on %s %s",
			payload.PartySize, payload.CustomerName, payload.RequestedDate, payload.RequestedTime),
		LargeParty: &payload,
	}
}

func NewWaitlistConversion(restaurantID, entryID uuid.UUID, customerName string, partySize int, outcome seating.OutcomeKind) Escalation {
	return Escalation{
		Kind:         KindWaitlistConversion,
		RestaurantID: restaurantID,
		Summary:      fmt.Sprintf("waitlist entry for %s (party of %d) converted: %s", customerName, partySize, outcome),
		Waitlist: &WaitlistConversionPayload{
			EntryID:      entryID,
			CustomerName: customerName,
			PartySize:    partySize,
			Outcome:      outcome.String(),
		},
	}
}

// PayloadJSON marshals whichever variant is populated.
func (e Escalation) PayloadJSON() ([]byte, error) {
	switch e.Kind {
	case KindCombinationNeeded:
		return json.Marshal(e.CombinationNeeded)
	case KindCapacityExceeded:
		return json.Marshal(e.CapacityExceeded)
	case KindManualAssignmentRequired:
		return json.Marshal(e.ManualAssignment)
	case KindLargePartyRequest:
		return json.Marshal(e.LargeParty)
	case KindWaitlistConversion:
		return json.Marshal(e.Waitlist)
	default:
		return nil, fmt.Errorf("unknown escalation kind %q", e.Kind)
	}
}

func toOptions(combos []seating.Combination) []CombinationOption {
	opts := make([]CombinationOption, len(combos))
	for i, c := range combos {
		ids := make([]uuid.UUID, len(c.Tables))
		numbers := make([]string, len(c.Tables))
		for j, t := range c.Tables {
			ids[j] = t.ID()
			numbers[j] = t.Number()
		}
		opts[i] = CombinationOption{
			TableIDs:      ids,
			TableNumbers:  numbers,
			TotalCapacity: c.TotalCapacity,
			Exact:         c.Exact,
		}
	}
	return opts
}

func optionPtr(c *seating.Combination) *CombinationOption {
	if c == nil {
		return nil
	}
	opts := toOptions([]seating.Combination{*c})
	return &opts[0]
}
