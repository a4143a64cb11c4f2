package shift

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownShift = errors.New("shift tidak dikenal")

// Shift is a named daily time window. Lateness and early-leave are measured
// against its boundaries. Start < End always holds; there are no overnight
// shifts.
type Shift struct {
	Key   string
	Start int // minutes since midnight
	End   int
}

// The shift catalog. Closed set: anything else is rejected at parse time.
var (
	Shift1 = Shift{Key: "shift1", Start: 7*60 + 30, End: 13*60 + 30} // 07:30-13:30
	Shift2 = Shift{Key: "shift2", Start: 12*60 + 30, End: 18*60 + 30} // 12:30-18:30
	Piket  = Shift{Key: "piket", Start: 8 * 60, End: 16 * 60}        // 08:00-16:00
)

// Parse resolves a shift key against the catalog.
func Parse(key string) (Shift, error) {
	switch key {
	case Shift1.Key:
		return Shift1, nil
	case Shift2.Key:
		return Shift2, nil
	case Piket.Key:
		return Piket, nil
	default:
		return Shift{}, fmt.Errorf("%w: %q", ErrUnknownShift, key)
	}
}

// Keys lists the valid shift keys, for validation messages.
func Keys() []string {
	return []string{Shift1.Key, Shift2.Key, Piket.Key}
}

// ClockToMinutes converts an "HH:MM" or "HH:MM:SS" wall-clock string to
// minutes since midnight. Seconds exist only for display and are ignored.
// Inputs come from a trusted clock or are validated upstream.
func ClockToMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 3)
	if len(parts) < 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

// MinutesToClock renders minutes since midnight as "HH:MM:SS".
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

// Duration is the shift length in minutes.
func (s Shift) Duration() int {
	return s.End - s.Start
}

// StartClock returns the shift start as "HH:MM:SS".
func (s Shift) StartClock() string {
	return MinutesToClock(s.Start)
}

// EndClock returns the shift end as "HH:MM:SS".
func (s Shift) EndClock() string {
	return MinutesToClock(s.End)
}

// LateMinutes computes how late a check-in is. Arriving before or exactly at
// shift start is never penalized. Lateness is capped at the full shift
// duration: arriving after the shift ended counts as maximally late, not
// infinitely late.
func (s Shift) LateMinutes(checkIn string) int {
	now := ClockToMinutes(checkIn)
	if now <= s.Start {
		return 0
	}
	late := now - s.Start
	if late > s.Duration() {
		return s.Duration()
	}
	return late
}

// EarlyLeaveMinutes computes how early a check-out is. Leaving at or after
// shift end is never penalized.
func (s Shift) EarlyLeaveMinutes(checkOut string) int {
	now := ClockToMinutes(checkOut)
	if now >= s.End {
		return 0
	}
	return s.End - now
}

// ClampCheckOut bounds the recorded check-out time to the shift end. Time
// spent past shift end is deliberately not recorded; the attendance record
// stays shift-bounded.
func (s Shift) ClampCheckOut(checkOut string) string {
	if ClockToMinutes(checkOut) >= s.End {
		return s.EndClock()
	}
	return normalizeClock(checkOut)
}

func normalizeClock(clock string) string {
	if strings.Count(clock, ":") == 1 {
		return clock + ":00"
	}
	return clock
}
