package seating

import (
	"seatwise/internal/domain/table"
)

// Policy thresholds. Defaults mirror the house rules: parties of up to four
// may be seated automatically, parties above six never reach the engine.
const (
	DefaultAutoAssignLimit      = 4
	DefaultLargePartyThreshold  = 6
	DefaultMaxCombinationTables = 3
)

type Policy struct {
	// AutoAssignLimit is the largest party the engine may seat without
	// staff confirmation.
	AutoAssignLimit int
	// LargePartyThreshold is the hard ceiling; larger parties are routed
	// to the human-contact workflow before the policy ever runs.
	LargePartyThreshold int
	// MaxCombinationTables bounds the subset size of the combination search.
	MaxCombinationTables int
}

func DefaultPolicy() Policy {
	return Policy{
		AutoAssignLimit:      DefaultAutoAssignLimit,
		LargePartyThreshold:  DefaultLargePartyThreshold,
		MaxCombinationTables: DefaultMaxCombinationTables,
	}
}

// Outcome is the terminal result of one assignment decision. Exactly one of
// Table / Proposed is populated depending on Kind; Candidates carries the
// full ranked combination list whenever a search ran.
type Outcome struct {
	Kind       OutcomeKind
	Table      *table.Table
	Proposed   *Combination
	Candidates []Combination
	// AutoApplied marks the proposed combination as tentatively linked to
	// the reservation (small parties without a manual pre-selection).
	AutoApplied bool
}

// IsLargeParty reports whether the party must be redirected to the
// out-of-band contact workflow instead of being evaluated.
func (p Policy) IsLargeParty(partySize int) bool {
	return partySize > p.LargePartyThreshold
}

// Decide runs the assignment rules over the free-table snapshot, in order:
//
//  1. exact single-table match wins outright;
//  2. parties above AutoAssignLimit go straight to the combination search
//     and are never auto-assigned, combining tables changes the physical
//     floor layout and staff must confirm in person;
//  3. otherwise the smallest sufficient single table is taken, preserving
//     larger tables for larger parties;
//  4. otherwise a combination proposal, auto-applied only for small parties
//     with no pre-selection; failing that, no assignment.
func (p Policy) Decide(free []table.Table, partySize int, hasPreselection bool) Outcome {
	if partySize <= 0 || len(free) == 0 {
		return p.combinationOrNothing(free, partySize, hasPreselection)
	}

	for i := range free {
		if free[i].SeatsExactly(partySize) {
			return Outcome{Kind: OutcomeExactSingleMatch, Table: &free[i]}
		}
	}

	if partySize > p.AutoAssignLimit {
		candidates := FindCombinations(free, partySize, p.MaxCombinationTables)
		if len(candidates) == 0 {
			return Outcome{Kind: OutcomeNoAssignment}
		}
		return Outcome{
			Kind:       OutcomeCombinationRequired,
			Proposed:   &candidates[0],
			Candidates: candidates,
		}
	}

	if best := smallestSufficient(free, partySize); best != nil {
		return Outcome{Kind: OutcomeAutoAssignedSingle, Table: best}
	}

	return p.combinationOrNothing(free, partySize, hasPreselection)
}

func (p Policy) combinationOrNothing(free []table.Table, partySize int, hasPreselection bool) Outcome {
	candidates := FindCombinations(free, partySize, p.MaxCombinationTables)
	if len(candidates) == 0 {
		return Outcome{Kind: OutcomeNoAssignment}
	}
	return Outcome{
		Kind:        OutcomeCombinationRequired,
		Proposed:    &candidates[0],
		Candidates:  candidates,
		AutoApplied: partySize <= p.AutoAssignLimit && !hasPreselection,
	}
}

// smallestSufficient picks the lowest-capacity table that still seats the
// party; earlier tables win capacity ties.
func smallestSufficient(free []table.Table, partySize int) *table.Table {
	var best *table.Table
	for i := range free {
		if !free[i].Seats(partySize) {
			continue
		}
		if best == nil || free[i].Capacity() < best.Capacity() {
			best = &free[i]
		}
	}
	return best
}
