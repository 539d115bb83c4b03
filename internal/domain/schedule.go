package domain

import (
	"strconv"
	"strings"
)

// WorkSchedule is a barber's daily work window, whole hours on a 24h clock.
// Slots are generated for every 30-minute boundary in [StartHour, EndHour).
type WorkSchedule struct {
	StartHour int
	EndHour   int
}

// DefaultWorkSchedule returns the platform default window (09:00-19:00)
func DefaultWorkSchedule() WorkSchedule {
	return WorkSchedule{StartHour: DefaultWorkStartHour, EndHour: DefaultWorkEndHour}
}

// ParseWorkSchedule parses a schedule string of the form "09:00-19:00".
// Only the hour components matter. Malformed input falls back to the default
// window rather than failing; a schedule string from the catalog must never
// make availability lookups error out.
func ParseWorkSchedule(raw string) WorkSchedule {
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return DefaultWorkSchedule()
	}

	start, okStart := parseHour(parts[0])
	end, okEnd := parseHour(parts[1])
	if !okStart || !okEnd {
		return DefaultWorkSchedule()
	}

	return WorkSchedule{StartHour: start, EndHour: end}
}

// SlotCount returns the number of 30-minute slots in the window
func (w WorkSchedule) SlotCount() int {
	if w.StartHour >= w.EndHour {
		return 0
	}
	return (w.EndHour - w.StartHour) * 2
}

func parseHour(s string) (int, bool) {
	hourPart := strings.SplitN(strings.TrimSpace(s), ":", 2)[0]
	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 24 {
		return 0, false
	}
	return hour, true
}
