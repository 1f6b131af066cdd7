package commands

import (
	"context"
	"time"

	"seatwise/internal/domain/capacity"
	"seatwise/internal/domain/escalation"
	"seatwise/internal/domain/seating"

	"github.com/google/uuid"
)

// LargePartyMailer is the outbound contact channel for parties above the
// hard ceiling; delivery details belong to infra.
type LargePartyMailer interface {
	SendLargePartyContact(ctx context.Context, payload escalation.LargePartyPayload) error
}

// OutcomeKind extends the policy outcomes with the two pre-policy results.
type OutcomeKind string

const (
	OutcomeExactSingleMatch     = OutcomeKind(seating.OutcomeExactSingleMatch)
	OutcomeAutoAssignedSingle   = OutcomeKind(seating.OutcomeAutoAssignedSingle)
	OutcomeCombinationRequired  = OutcomeKind(seating.OutcomeCombinationRequired)
	OutcomeNoAssignment         = OutcomeKind(seating.OutcomeNoAssignment)
	OutcomeCapacityRejected     OutcomeKind = "capacity_rejected"
	OutcomeLargePartyRedirected OutcomeKind = "large_party_redirected"
)

type EvaluateSeatingParams struct {
	RestaurantID       uuid.UUID
	Date               time.Time
	Time               capacity.TimeOfDay
	PartySize          int
	PreSelectedTableID *uuid.UUID
	CustomerName       string
	CustomerPhone      *string
	CustomerEmail      *string
	Note               *string
}

type AssignedTable struct {
	ID       uuid.UUID
	Number   string
	Capacity int
}

type CandidateCombination struct {
	Tables        []AssignedTable
	TotalCapacity int
	Exact         bool
}

type CapacityFigures struct {
	CurrentGuests int
	MaxGuests     int
	SlotStart     string
	SlotEnd       string
}

// AssignmentOutcome is the tagged result of one evaluation. ReservationID is
// nil only for the two rejecting kinds; AssignedTables is empty whenever the
// assignment was left for staff.
type AssignmentOutcome struct {
	Kind           OutcomeKind
	ReservationID  *uuid.UUID
	AssignedTables []AssignedTable
	Proposed       *CandidateCombination
	Candidates     []CandidateCombination
	AutoApplied    bool
	Capacity       *CapacityFigures
}
