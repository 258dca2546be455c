package usecase

import (
	"math"
	"strconv"
	"strings"

	"cuidandote_presupuestos/internal/domain/entities"
)

// TimeSlot is a single from/to range within a day, as "HH:MM" strings.
type TimeSlot struct {
	From string
	To   string
}

// DaySchedule carries the slots requested for one weekday.
type DaySchedule struct {
	Day   string
	Slots []TimeSlot
}

// ScheduleEntry is one element of the selectedSchedule payload list. The
// first entry's Value tags the whole schedule; the first entry carrying a
// day list supplies the slots.
type ScheduleEntry struct {
	Value string
	Days  []DaySchedule
}

// normalizedSchedule is the output of schedule normalization.
//
// RealWeeklyHours reflects the actual work pattern and drives service
// classification. HorasEquivalentes folds the partial-month week count into
// the figure used as the salary-table lookup key:
//
//	horas_equivalentes = round((horas_reales / 4) * semanas), clamped to [1,40]
type normalizedSchedule struct {
	RealWeeklyHours   float64
	HorasEquivalentes int
	HorarioTipo       entities.ScheduleType
	Semanas           int
}

func normalizeSchedule(days []string, weeks int, schedule []ScheduleEntry) normalizedSchedule {
	numDias := len(days)
	semanas := clampInt(weeks, 1, 4)

	horarioTipo := entities.ScheduleSame
	if len(schedule) > 0 && schedule[0].Value != "" {
		horarioTipo = entities.ScheduleType(schedule[0].Value)
	}

	var horasSemanales float64
	if horarioTipo == entities.Schedule24h {
		// Live-in: fixed 8 hours of effective work per day.
		horasSemanales = 8 * float64(numDias)
	} else {
		for _, dayCfg := range scheduleDays(schedule) {
			horasDia := 0.0
			for _, slot := range dayCfg.Slots {
				horasDia += slotHours(slot.From, slot.To)
			}

			if horarioTipo == entities.ScheduleSame {
				// One slot set repeated across every selected day.
				horasSemanales = horasDia * float64(numDias)
				break
			}
			horasSemanales += horasDia
		}
	}

	horasSemanales = clampFloat(horasSemanales, 1, 40)

	equivalentes := math.Round((horasSemanales / 4) * float64(semanas))
	equivalentes = clampFloat(equivalentes, 1, 40)

	return normalizedSchedule{
		RealWeeklyHours:   horasSemanales,
		HorasEquivalentes: int(equivalentes),
		HorarioTipo:       horarioTipo,
		Semanas:           semanas,
	}
}

// scheduleDays returns the day list of the first entry that carries one.
func scheduleDays(schedule []ScheduleEntry) []DaySchedule {
	for _, entry := range schedule {
		if len(entry.Days) > 0 {
			return entry.Days
		}
	}
	return nil
}

// slotHours computes the duration of a slot in hours. A "to" at or before
// "from" is treated as crossing midnight. Malformed components parse as 0,
// matching the tolerant behavior of the public form.
func slotHours(from, to string) float64 {
	fromMin := timeToMinutes(from)
	toMin := timeToMinutes(to)
	if toMin <= fromMin {
		toMin += 24 * 60
	}
	return float64(toMin-fromMin) / 60
}

func timeToMinutes(t string) int {
	parts := strings.Split(t, ":")
	hours := atoiOrZero(parts[0])
	minutes := 0
	if len(parts) > 1 {
		minutes = atoiOrZero(parts[1])
	}
	return hours*60 + minutes
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
