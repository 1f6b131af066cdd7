package escalation

type Kind string

const (
	KindCombinationNeeded        Kind = "combination_needed"
	KindCapacityExceeded         Kind = "capacity_exceeded"
	KindManualAssignmentRequired Kind = "manual_assignment_required"
	KindLargePartyRequest        Kind = "large_party_request"
	KindWaitlistConversion       Kind = "waitlist_conversion"
)

func (k Kind) String() string {
	return string(k)
}
