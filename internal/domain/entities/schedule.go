package entities

// ScheduleType tags how the requested weekly schedule is expressed.
//
//   - "same": one time-slot set repeated on every selected day
//   - "24h": live-in service (fixed 8h effective work per day)
//   - "different": per-day slot lists
type ScheduleType string

const (
	ScheduleSame      ScheduleType = "same"
	Schedule24h       ScheduleType = "24h"
	ScheduleDifferent ScheduleType = "different"
)

// Weekday codes as sent by the public form (Spanish abbreviations).
const (
	DiaLunes     = "LUN"
	DiaMartes    = "MAR"
	DiaMiercoles = "MIE"
	DiaJueves    = "JUE"
	DiaViernes   = "VIE"
	DiaSabado    = "SAB"
	DiaDomingo   = "DOM"
)

var weekendDays = map[string]bool{DiaSabado: true, DiaDomingo: true}

var weekDays = map[string]bool{
	DiaLunes:     true,
	DiaMartes:    true,
	DiaMiercoles: true,
	DiaJueves:    true,
	DiaViernes:   true,
}

// IsWeekendOnly reports whether every selected day falls on the weekend.
// An empty selection is not weekend-only.
func IsWeekendOnly(days []string) bool {
	for _, d := range days {
		if !weekendDays[d] {
			return false
		}
	}
	return len(days) > 0
}

// IsWeekdayOnly reports whether every selected day is Monday..Friday.
// An empty selection is not weekday-only.
func IsWeekdayOnly(days []string) bool {
	for _, d := range days {
		if !weekDays[d] {
			return false
		}
	}
	return len(days) > 0
}
