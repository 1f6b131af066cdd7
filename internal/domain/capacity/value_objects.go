package capacity

import (
	"errors"
	"fmt"
)

var ErrInvalidTimeOfDay = errors.New("time of day must be within 00:00-23:59")

const minutesPerDay = 24 * 60

// TimeOfDay is a minute-granularity clock time, independent of date and zone.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: minutes}, nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// Floor truncates to the start of the enclosing slot, e.g. 18:07 with a
// 15-minute slot floors to 18:00.
func (t TimeOfDay) Floor(slotLengthMin int) TimeOfDay {
	return TimeOfDay{minutes: (t.minutes / slotLengthMin) * slotLengthMin}
}

// Add saturates at end of day rather than wrapping; capacity windows never
// cross midnight.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	m := t.minutes + minutes
	if m > minutesPerDay {
		m = minutesPerDay
	}
	return TimeOfDay{minutes: m}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}
