package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cuidandote_presupuestos/internal/domain/entities"
	"cuidandote_presupuestos/internal/usecase/interfaces"
	mock_interfaces "cuidandote_presupuestos/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func validCommand() QuoteCommand {
	return QuoteCommand{
		Nombre:       "María García",
		Email:        "maria@example.com",
		Telefono:     "600123456",
		CodigoPostal: "28001",
		DiasSemana:   []string{"LUN", "MAR", "MIE", "JUE", "VIE", "SAB", "DOM"},
		Semanas:      4,
		DuracionTipo: "larga",
		Horario:      []ScheduleEntry{{Value: "24h"}},
		HorarioDetalle: `[{"value":"24h"}]`,
		AceptaPrivacidad: true,
		IPAddress:    "203.0.113.7",
		UserAgent:    "test-agent",
	}
}

func salaryRow40() entities.SalaryRate {
	return entities.SalaryRate{
		Horas:        40,
		Label:        "40 horas semanales",
		SalarioBruto: decimal.RequireFromString("1381.34"),
		SalarioNeto:  decimal.RequireFromString("1293.21"),
		CotizacionSS: decimal.RequireFromString("394.61"),
	}
}

func tariff(concepto, valor string, iva int64) entities.Tariff {
	return entities.Tariff{
		Concepto: concepto,
		Valor:    decimal.RequireFromString(valor),
		IVA:      decimal.NewFromInt(iva),
		Activo:   true,
	}
}

func TestQuoteUseCase_CreateQuote_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*QuoteCommand)
		want   error
	}{
		{name: "missing name", mutate: func(c *QuoteCommand) { c.Nombre = "  " }, want: ErrMissingName},
		{name: "invalid email", mutate: func(c *QuoteCommand) { c.Email = "not-an-email" }, want: ErrInvalidEmail},
		{name: "missing phone", mutate: func(c *QuoteCommand) { c.Telefono = "" }, want: ErrMissingPhone},
		{name: "missing days", mutate: func(c *QuoteCommand) { c.DiasSemana = nil }, want: ErrMissingDays},
		{name: "missing schedule", mutate: func(c *QuoteCommand) { c.Horario = nil }, want: ErrMissingSchedule},
		{name: "privacy not accepted", mutate: func(c *QuoteCommand) { c.AceptaPrivacidad = false }, want: ErrPrivacyNotAccepted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewQuoteUseCase(nil, nil, nil)
			cmd := validCommand()
			tc.mutate(&cmd)
			_, err := uc.CreateQuote(context.Background(), cmd)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestQuoteUseCase_CreateQuote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	rates := mock_interfaces.NewMockIRateRepository(ctrl)
	mailer := mock_interfaces.NewMockIMailSender(ctrl)
	uc := NewQuoteUseCase(repo, rates, mailer)

	rates.EXPECT().GetSalaryByHours(gomock.Any(), 40).Return(salaryRow40(), nil)
	rates.EXPECT().GetTariff(gomock.Any(), entities.TarifaCuotaMantenimiento).Return(tariff(entities.TarifaCuotaMantenimiento, "62.00", 21), nil)
	rates.EXPECT().GetTariff(gomock.Any(), entities.TarifaComisionEstandar).Return(tariff(entities.TarifaComisionEstandar, "300.00", 21), nil)

	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
		func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			if q.Token == "" {
				t.Fatalf("expected generated token")
			}
			if q.TipoServicio != entities.ServiceInternaCompleta {
				t.Fatalf("unexpected service type: %s", q.TipoServicio)
			}
			if q.HorasSemanales != 40 {
				t.Fatalf("expected 40 equivalent hours, got %d", q.HorasSemanales)
			}
			// 62.00 with 21% VAT = 75.02; 1293.21 + 394.61 + 75.02 = 1762.84
			if got := q.PagoMensual.StringFixed(2); got != "1762.84" {
				t.Fatalf("unexpected pago_mensual: %s", got)
			}
			if got := q.CuotaCuidandoteIVA.StringFixed(2); got != "75.02" {
				t.Fatalf("unexpected cuota con IVA: %s", got)
			}
			if got := q.ComisionAgenciaIVA.StringFixed(2); got != "363.00" {
				t.Fatalf("unexpected comision con IVA: %s", got)
			}
			if q.EmailEnviado || q.TokenUsado {
				t.Fatalf("flags must start false: %+v", q)
			}
			ttl := time.Until(q.TokenExpiraAt)
			if ttl < 29*24*time.Hour || ttl > 31*24*time.Hour {
				t.Fatalf("expected ~30d expiry, got %s", ttl)
			}
			return q, nil
		},
	)
	mailer.EXPECT().SendClientQuote(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().MarkEmailSent(gomock.Any(), gomock.Any()).Return(nil)
	mailer.EXPECT().SendAdminAlert(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().MarkAdminNotified(gomock.Any(), gomock.Any()).Return(nil)

	res, err := uc.CreateQuote(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.EmailEnviado || !res.AdminNotificado {
		t.Fatalf("expected notification flags set, got %+v", res)
	}
}

func TestQuoteUseCase_CreateQuote_SingleDayCommission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	rates := mock_interfaces.NewMockIRateRepository(ctrl)
	uc := NewQuoteUseCase(repo, rates, nil)

	cmd := validCommand()
	cmd.DiasSemana = []string{"SAB"}

	// 8h x 1 day, 4 weeks: round(8/4*4) = 8
	rates.EXPECT().GetSalaryByHours(gomock.Any(), 8).Return(entities.SalaryRate{
		Horas:        8,
		SalarioBruto: decimal.RequireFromString("276.27"),
		SalarioNeto:  decimal.RequireFromString("257.64"),
		CotizacionSS: decimal.RequireFromString("83.43"),
	}, nil)
	rates.EXPECT().GetTariff(gomock.Any(), entities.TarifaCuotaMantenimiento).Return(tariff(entities.TarifaCuotaMantenimiento, "62.00", 21), nil)
	rates.EXPECT().GetTariff(gomock.Any(), entities.TarifaComision1Dia).Return(tariff(entities.TarifaComision1Dia, "50.00", 21), nil)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			if got := q.ComisionAgencia.StringFixed(2); got != "50.00" {
				t.Fatalf("expected single-day commission, got %s", got)
			}
			if got := q.ComisionAgenciaIVA.StringFixed(2); got != "60.50" {
				t.Fatalf("unexpected commission with VAT: %s", got)
			}
			if q.TipoServicio != entities.ServiceInternaFinesSemana {
				t.Fatalf("unexpected service type: %s", q.TipoServicio)
			}
			return q, nil
		},
	)

	if _, err := uc.CreateQuote(context.Background(), cmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuoteUseCase_CreateQuote_TariffFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	rates := mock_interfaces.NewMockIRateRepository(ctrl)
	uc := NewQuoteUseCase(repo, rates, nil)

	rates.EXPECT().GetSalaryByHours(gomock.Any(), 40).Return(salaryRow40(), nil)
	rates.EXPECT().GetTariff(gomock.Any(), entities.TarifaCuotaMantenimiento).Return(entities.Tariff{}, nil)
	rates.EXPECT().GetTariff(gomock.Any(), entities.TarifaComisionEstandar).Return(entities.Tariff{}, nil)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			// Built-in fallback fee is 65.00 at 21% = 78.65
			if got := q.CuotaCuidandoteIVA.StringFixed(2); got != "78.65" {
				t.Fatalf("expected fallback cuota, got %s", got)
			}
			if got := q.PagoMensual.StringFixed(2); got != "1766.47" {
				t.Fatalf("unexpected pago_mensual: %s", got)
			}
			if got := q.ComisionAgencia.StringFixed(2); got != "300.00" {
				t.Fatalf("expected fallback commission, got %s", got)
			}
			return q, nil
		},
	)

	if _, err := uc.CreateQuote(context.Background(), validCommand()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuoteUseCase_CreateQuote_SalaryRowMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	rates := mock_interfaces.NewMockIRateRepository(ctrl)
	uc := NewQuoteUseCase(repo, rates, nil)

	rates.EXPECT().GetSalaryByHours(gomock.Any(), 40).Return(entities.SalaryRate{}, nil)
	rates.EXPECT().GetTariff(gomock.Any(), entities.TarifaCuotaMantenimiento).Return(tariff(entities.TarifaCuotaMantenimiento, "62.00", 21), nil)
	rates.EXPECT().GetTariff(gomock.Any(), entities.TarifaComisionEstandar).Return(tariff(entities.TarifaComisionEstandar, "300.00", 21), nil)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			if got := q.PagoMensual.StringFixed(2); got != "75.02" {
				t.Fatalf("expected fee-only payment, got %s", got)
			}
			return q, nil
		},
	)

	if _, err := uc.CreateQuote(context.Background(), validCommand()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuoteUseCase_CreateQuote_RateRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rates := mock_interfaces.NewMockIRateRepository(ctrl)
	uc := NewQuoteUseCase(nil, rates, nil)

	rates.EXPECT().GetSalaryByHours(gomock.Any(), 40).Return(entities.SalaryRate{}, errors.New("db"))

	_, err := uc.CreateQuote(context.Background(), validCommand())
	if err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestQuoteUseCase_CreateQuote_DuplicateTokenRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	rates := mock_interfaces.NewMockIRateRepository(ctrl)
	uc := NewQuoteUseCase(repo, rates, nil)

	rates.EXPECT().GetSalaryByHours(gomock.Any(), 40).Return(salaryRow40(), nil)
	rates.EXPECT().GetTariff(gomock.Any(), gomock.Any()).Return(tariff(entities.TarifaCuotaMantenimiento, "62.00", 21), nil).Times(2)

	var firstToken string
	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				firstToken = q.Token
				return entities.Quote{}, interfaces.ErrDuplicateToken
			},
		),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Token == firstToken {
					t.Fatalf("expected a fresh token on retry")
				}
				return q, nil
			},
		),
	)

	res, err := uc.CreateQuote(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Token == "" || res.Token == firstToken {
		t.Fatalf("expected regenerated token, got %q", res.Token)
	}
}

func TestQuoteUseCase_CreateQuote_PersistenceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	rates := mock_interfaces.NewMockIRateRepository(ctrl)
	uc := NewQuoteUseCase(repo, rates, nil)

	rates.EXPECT().GetSalaryByHours(gomock.Any(), 40).Return(salaryRow40(), nil)
	rates.EXPECT().GetTariff(gomock.Any(), gomock.Any()).Return(tariff(entities.TarifaCuotaMantenimiento, "62.00", 21), nil).Times(2)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("dynamo down"))

	_, err := uc.CreateQuote(context.Background(), validCommand())
	if err == nil || err.Error() != "dynamo down" {
		t.Fatalf("expected persistence error, got %v", err)
	}
}

func TestQuoteUseCase_CreateQuote_MailFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	rates := mock_interfaces.NewMockIRateRepository(ctrl)
	mailer := mock_interfaces.NewMockIMailSender(ctrl)
	uc := NewQuoteUseCase(repo, rates, mailer)

	rates.EXPECT().GetSalaryByHours(gomock.Any(), 40).Return(salaryRow40(), nil)
	rates.EXPECT().GetTariff(gomock.Any(), gomock.Any()).Return(tariff(entities.TarifaCuotaMantenimiento, "62.00", 21), nil).Times(2)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
	)

	mailer.EXPECT().SendClientQuote(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
	mailer.EXPECT().SendAdminAlert(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().MarkAdminNotified(gomock.Any(), gomock.Any()).Return(nil)

	res, err := uc.CreateQuote(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.EmailEnviado {
		t.Fatalf("expected email_enviado false after smtp failure")
	}
	if !res.AdminNotificado {
		t.Fatalf("expected admin_notificado true")
	}
}

func TestQuoteUseCase_CreateQuote_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	rates := mock_interfaces.NewMockIRateRepository(ctrl)
	uc := NewQuoteUseCase(repo, rates, nil)

	rates.EXPECT().GetSalaryByHours(gomock.Any(), 40).Return(salaryRow40(), nil).Times(2)
	rates.EXPECT().GetTariff(gomock.Any(), entities.TarifaCuotaMantenimiento).Return(tariff(entities.TarifaCuotaMantenimiento, "62.00", 21), nil).Times(2)
	rates.EXPECT().GetTariff(gomock.Any(), entities.TarifaComisionEstandar).Return(tariff(entities.TarifaComisionEstandar, "300.00", 21), nil).Times(2)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
	).Times(2)

	first, err := uc.CreateQuote(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.CreateQuote(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Token == second.Token {
		t.Fatalf("expected distinct tokens, both were %q", first.Token)
	}
	if first.TipoServicio != second.TipoServicio || first.TipoServicioLabel != second.TipoServicioLabel {
		t.Fatalf("service type differs: %s vs %s", first.TipoServicio, second.TipoServicio)
	}
	if first.HorasSemanales != second.HorasSemanales {
		t.Fatalf("equivalent hours differ: %d vs %d", first.HorasSemanales, second.HorasSemanales)
	}
	money := []struct {
		name string
		a, b decimal.Decimal
	}{
		{"salario_bruto", first.SalarioBruto, second.SalarioBruto},
		{"salario_neto", first.SalarioNeto, second.SalarioNeto},
		{"cotizacion_ss", first.CotizacionSS, second.CotizacionSS},
		{"cuota_cuidandote", first.CuotaCuidandote, second.CuotaCuidandote},
		{"cuota_cuidandote_iva", first.CuotaCuidandoteIVA, second.CuotaCuidandoteIVA},
		{"pago_mensual", first.PagoMensual, second.PagoMensual},
		{"comision_agencia", first.ComisionAgencia, second.ComisionAgencia},
		{"comision_agencia_iva", first.ComisionAgenciaIVA, second.ComisionAgenciaIVA},
	}
	for _, m := range money {
		if !m.a.Equal(m.b) {
			t.Fatalf("%s differs: %s vs %s", m.name, m.a, m.b)
		}
	}
}

func TestQuoteUseCase_CreateQuote_ParallelTokensAreDistinct(t *testing.T) {
	const submissions = 16

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	rates := mock_interfaces.NewMockIRateRepository(ctrl)
	uc := NewQuoteUseCase(repo, rates, nil)

	rates.EXPECT().GetSalaryByHours(gomock.Any(), 40).Return(salaryRow40(), nil).Times(submissions)
	rates.EXPECT().GetTariff(gomock.Any(), gomock.Any()).Return(tariff(entities.TarifaCuotaMantenimiento, "62.00", 21), nil).Times(2 * submissions)

	var mu sync.Mutex
	stored := make(map[string]bool)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			mu.Lock()
			defer mu.Unlock()
			if stored[q.Token] {
				return entities.Quote{}, interfaces.ErrDuplicateToken
			}
			stored[q.Token] = true
			return q, nil
		},
	).Times(submissions)

	var wg sync.WaitGroup
	errs := make(chan error, submissions)
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.CreateQuote(context.Background(), validCommand())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(stored) != submissions {
		t.Fatalf("expected %d distinct tokens persisted, got %d", submissions, len(stored))
	}
}

func TestQuoteUseCase_GetByToken(t *testing.T) {
	t.Run("invalid token", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		for _, token := range []string{"", "  ", "abc/../etc", "has space"} {
			if _, err := uc.GetByToken(context.Background(), token); !errors.Is(err, ErrInvalidQuoteToken) {
				t.Fatalf("token %q: expected ErrInvalidQuoteToken, got %v", token, err)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)
		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Quote{}, nil)

		_, err := uc.GetByToken(context.Background(), "tok-1")
		if !errors.Is(err, ErrPresupuestoNotFound) {
			t.Fatalf("expected ErrPresupuestoNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)
		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Quote{}, errors.New("db"))

		_, err := uc.GetByToken(context.Background(), "tok-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)
		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Quote{Token: "tok-1"}, nil)

		q, err := uc.GetByToken(context.Background(), " tok-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Token != "tok-1" {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})
}

func TestQuoteUseCase_MarkUsed(t *testing.T) {
	t.Run("marks once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)
		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Quote{Token: "tok-1"}, nil)
		repo.EXPECT().MarkUsed(gomock.Any(), "tok-1").Return(nil)

		q, err := uc.MarkUsed(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q.TokenUsado {
			t.Fatalf("expected token_usado true")
		}
	})

	t.Run("already used is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)
		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Quote{Token: "tok-1", TokenUsado: true}, nil)

		q, err := uc.MarkUsed(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q.TokenUsado {
			t.Fatalf("expected token_usado true")
		}
	})

	t.Run("missing quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)
		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Quote{}, nil)

		_, err := uc.MarkUsed(context.Background(), "tok-1")
		if !errors.Is(err, ErrPresupuestoNotFound) {
			t.Fatalf("expected ErrPresupuestoNotFound, got %v", err)
		}
	})
}
