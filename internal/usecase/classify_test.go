package usecase

import (
	"testing"

	"cuidandote_presupuestos/internal/domain/entities"
)

func TestClassifyService(t *testing.T) {
	cases := []struct {
		name        string
		horasReales float64
		horarioTipo entities.ScheduleType
		days        []string
		wantTipo    entities.ServiceType
		wantLabel   string
	}{
		{
			name:        "live-in full week",
			horasReales: 40,
			horarioTipo: entities.Schedule24h,
			days:        []string{"LUN", "MAR", "MIE", "JUE", "VIE", "SAB", "DOM"},
			wantTipo:    entities.ServiceInternaCompleta,
			wantLabel:   "Interna completa (24h)",
		},
		{
			name:        "live-in weekdays only",
			horasReales: 40,
			horarioTipo: entities.Schedule24h,
			days:        []string{"LUN", "MAR", "MIE", "JUE", "VIE"},
			wantTipo:    entities.ServiceInternaEntreSemana,
			wantLabel:   "Interna entre semana",
		},
		{
			name:        "live-in weekend pair",
			horasReales: 16,
			horarioTipo: entities.Schedule24h,
			days:        []string{"SAB", "DOM"},
			wantTipo:    entities.ServiceInternaFinesSemana,
			wantLabel:   "Interna fines de semana (día y medio)",
		},
		{
			name:        "live-in single weekend day",
			horasReales: 8,
			horarioTipo: entities.Schedule24h,
			days:        []string{"SAB"},
			wantTipo:    entities.ServiceInternaFinesSemana,
			wantLabel:   "Interna 1 día a la semana",
		},
		{
			name:        "live-in two weekdays",
			horasReales: 16,
			horarioTipo: entities.Schedule24h,
			days:        []string{"LUN", "MAR"},
			wantTipo:    entities.ServiceInternaParcial,
			wantLabel:   "Interna 2 días a la semana",
		},
		{
			name:        "live-in mixed four days",
			horasReales: 32,
			horarioTipo: entities.Schedule24h,
			days:        []string{"LUN", "MAR", "MIE", "SAB"},
			wantTipo:    entities.ServiceInternaParcial,
			wantLabel:   "Interna 4 días a la semana",
		},
		{
			name:        "external short daily hours",
			horasReales: 10.5,
			horarioTipo: entities.ScheduleSame,
			days:        []string{"LUN", "MIE", "VIE"},
			wantTipo:    entities.ServiceExternaHoras,
			wantLabel:   "Externa por horas",
		},
		{
			name:        "external partial",
			horasReales: 12,
			horarioTipo: entities.ScheduleSame,
			days:        []string{"LUN", "MIE", "VIE"},
			wantTipo:    entities.ServiceExternaParcial,
			wantLabel:   "Externa jornada parcial",
		},
		{
			name:        "external full time",
			horasReales: 40,
			horarioTipo: entities.ScheduleSame,
			days:        []string{"LUN", "MAR", "MIE", "JUE", "VIE"},
			wantTipo:    entities.ServiceExternaCompleta,
			wantLabel:   "Externa jornada completa",
		},
		{
			name:        "external boundary exactly thirty-five hours",
			horasReales: 35,
			horarioTipo: entities.ScheduleSame,
			days:        []string{"LUN", "MAR", "MIE", "JUE", "VIE"},
			wantTipo:    entities.ServiceExternaCompleta,
			wantLabel:   "Externa jornada completa",
		},
		{
			name:        "external long single day stays below full time",
			horasReales: 34,
			horarioTipo: entities.ScheduleSame,
			days:        []string{"LUN"},
			wantTipo:    entities.ServiceExternaParcial,
			wantLabel:   "Externa jornada parcial",
		},
		{
			name:        "external boundary exactly four hours per day",
			horasReales: 20,
			horarioTipo: entities.ScheduleDifferent,
			days:        []string{"LUN", "MAR", "MIE", "JUE", "VIE"},
			wantTipo:    entities.ServiceExternaParcial,
			wantLabel:   "Externa jornada parcial",
		},
		{
			name:        "external with no days does not divide by zero",
			horasReales: 1,
			horarioTipo: entities.ScheduleSame,
			days:        nil,
			wantTipo:    entities.ServiceExternaHoras,
			wantLabel:   "Externa por horas",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tipo, label := classifyService(tc.horasReales, tc.horarioTipo, tc.days)
			if tipo != tc.wantTipo {
				t.Fatalf("expected %s, got %s", tc.wantTipo, tipo)
			}
			if label != tc.wantLabel {
				t.Fatalf("expected label %q, got %q", tc.wantLabel, label)
			}
		})
	}
}
