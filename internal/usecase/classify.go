package usecase

import (
	"fmt"

	"cuidandote_presupuestos/internal/domain/entities"
)

// classifyService maps the real work pattern to a service type and its
// human label. It deliberately uses the REAL weekly hours, not the
// hours-equivalent: the classification reflects what the caregiver works,
// not the billing-period-adjusted lookup key.
func classifyService(horasReales float64, horarioTipo entities.ScheduleType, days []string) (entities.ServiceType, string) {
	numDias := len(days)

	if horarioTipo == entities.Schedule24h {
		switch {
		case entities.IsWeekendOnly(days):
			label := "Interna fines de semana"
			if numDias == 1 {
				label = "Interna 1 día a la semana"
			} else if numDias == 2 {
				label = "Interna fines de semana (día y medio)"
			}
			return entities.ServiceInternaFinesSemana, label
		case numDias <= 2:
			return entities.ServiceInternaParcial, fmt.Sprintf("Interna %d días a la semana", numDias)
		case numDias >= 6:
			return entities.ServiceInternaCompleta, "Interna completa (24h)"
		case entities.IsWeekdayOnly(days):
			return entities.ServiceInternaEntreSemana, "Interna entre semana"
		default:
			return entities.ServiceInternaParcial, fmt.Sprintf("Interna %d días a la semana", numDias)
		}
	}

	horasDiarias := horasReales / float64(max(1, numDias))
	switch {
	case horasDiarias < 4:
		return entities.ServiceExternaHoras, "Externa por horas"
	case horasReales >= 35:
		return entities.ServiceExternaCompleta, "Externa jornada completa"
	default:
		return entities.ServiceExternaParcial, "Externa jornada parcial"
	}
}
