package capacity

// Booking is the slice of an existing reservation the guard cares about.
type Booking struct {
	Time      TimeOfDay
	PartySize int
}

type Decision struct {
	Allowed   bool
	Rule      *Rule
	SlotStart TimeOfDay
	SlotEnd   TimeOfDay
	// CurrentGuests is the party-size sum already booked in the slot,
	// excluding the requested party.
	CurrentGuests int
	MaxGuests     int
}

// Evaluate checks a requested party against the first rule whose window
// contains the requested time. No matching rule means capacity is
// unconstrained. Pure function; the caller supplies the non-cancelled
// bookings for the requested date.
func Evaluate(rules []Rule, at TimeOfDay, partySize int, existing []Booking) Decision {
	for i := range rules {
		rule := rules[i]
		if !rule.Contains(at) {
			continue
		}

		slotStart, slotEnd := rule.Slot(at)

		sum := 0
		for _, b := range existing {
			if !b.Time.Before(slotStart) && b.Time.Before(slotEnd) {
				sum += b.PartySize
			}
		}

		return Decision{
			Allowed:       sum+partySize <= rule.MaxGuestsPerSlot(),
			Rule:          &rule,
			SlotStart:     slotStart,
			SlotEnd:       slotEnd,
			CurrentGuests: sum,
			MaxGuests:     rule.MaxGuestsPerSlot(),
		}
	}

	return Decision{Allowed: true}
}
