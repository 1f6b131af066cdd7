package seating

type OutcomeKind string

const (
	// OutcomeExactSingleMatch: a free table seats the party exactly.
	OutcomeExactSingleMatch OutcomeKind = "exact_single_match"
	// OutcomeAutoAssignedSingle: smallest sufficient single table chosen
	// automatically (small parties only).
	OutcomeAutoAssignedSingle OutcomeKind = "auto_assigned_single"
	// OutcomeCombinationRequired: no single table suffices; staff must
	// confirm a multi-table grouping.
	OutcomeCombinationRequired OutcomeKind = "combination_required"
	// OutcomeNoAssignment: nothing the engine can suggest.
	OutcomeNoAssignment OutcomeKind = "no_assignment_possible"
)

func (k OutcomeKind) String() string {
	return string(k)
}

// NeedsStaffAttention reports whether the outcome must raise an escalation.
func (k OutcomeKind) NeedsStaffAttention() bool {
	return k == OutcomeCombinationRequired || k == OutcomeNoAssignment
}
