package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"cuidandote_presupuestos/internal/domain/entities"
	"cuidandote_presupuestos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPresupuestoNotFound = errors.New("presupuesto not found")
	ErrInvalidQuoteToken   = errors.New("invalid quote token")
	ErrMissingName         = errors.New("missing name")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrMissingPhone        = errors.New("missing phone")
	ErrMissingDays         = errors.New("missing selected days")
	ErrMissingSchedule     = errors.New("missing schedule")
	ErrPrivacyNotAccepted  = errors.New("privacy policy not accepted")
)

// QuoteCommand is the validated submission handed over by the HTTP layer.
// Free-text fields arrive already sanitized; HorarioDetalle carries the raw
// schedule payload re-serialized after sanitization, kept verbatim for the
// proposal page and the admin alert.
type QuoteCommand struct {
	Nombre       string
	Email        string
	Telefono     string
	CodigoPostal string

	LlamadaFecha string
	LlamadaHora  string

	DiasSemana     []string
	Semanas        int
	DuracionTipo   string
	Horario        []ScheduleEntry
	HorarioDetalle string

	AceptaPrivacidad bool

	IPAddress string
	UserAgent string
}

// IQuoteUseCase exposes the budget request operations.
//
// CreateQuote runs the whole submission pipeline: normalize the schedule,
// classify the service, price it against the salary table and tariffs,
// persist the quote under a fresh token and fire the two notification
// mails. Mail delivery is best-effort; a saved quote is always returned.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, cmd QuoteCommand) (entities.Quote, error)
	GetByToken(ctx context.Context, token string) (entities.Quote, error)
	MarkUsed(ctx context.Context, token string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo   interfaces.IQuoteRepository
	rates  interfaces.IRateRepository
	mailer interfaces.IMailSender
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, rates interfaces.IRateRepository, mailer interfaces.IMailSender) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, rates: rates, mailer: mailer}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, cmd QuoteCommand) (entities.Quote, error) {
	log.Printf("[quote][usecase] create start email=%q dias=%d semanas=%d", cmd.Email, len(cmd.DiasSemana), cmd.Semanas)

	if err := validateCommand(cmd); err != nil {
		log.Printf("[quote][usecase] validation failed err=%v", err)
		return entities.Quote{}, err
	}

	norm := normalizeSchedule(cmd.DiasSemana, cmd.Semanas, cmd.Horario)
	tipo, label := classifyService(norm.RealWeeklyHours, norm.HorarioTipo, cmd.DiasSemana)
	log.Printf("[quote][usecase] schedule normalized horas_reales=%.2f horas_equivalentes=%d tipo_servicio=%s", norm.RealWeeklyHours, norm.HorasEquivalentes, tipo)

	fig, err := u.calculate(ctx, norm.HorasEquivalentes, len(cmd.DiasSemana))
	if err != nil {
		log.Printf("[quote][usecase] calculation failed err=%v", err)
		return entities.Quote{}, err
	}

	token, err := generateQuoteToken()
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		Token:              token,
		Nombre:             cmd.Nombre,
		Email:              cmd.Email,
		Telefono:           cmd.Telefono,
		CodigoPostal:       cmd.CodigoPostal,
		TipoServicio:       tipo,
		TipoServicioLabel:  label,
		DuracionTipo:       cmd.DuracionTipo,
		DiasSemana:         marshalDays(cmd.DiasSemana),
		SemanasMes:         norm.Semanas,
		HorarioTipo:        norm.HorarioTipo,
		HorarioDetalle:     cmd.HorarioDetalle,
		HorasSemanales:     norm.HorasEquivalentes,
		SalarioBruto:       fig.SalarioBruto,
		SalarioNeto:        fig.SalarioNeto,
		CotizacionSS:       fig.CotizacionSS,
		CuotaCuidandote:    fig.CuotaCuidandote,
		CuotaCuidandoteIVA: fig.CuotaCuidandoteIVA,
		PagoMensual:        fig.PagoMensual,
		ComisionAgencia:    fig.ComisionAgencia,
		ComisionAgenciaIVA: fig.ComisionAgenciaIVA,
		LlamadaFecha:       cmd.LlamadaFecha,
		LlamadaHora:        cmd.LlamadaHora,
		IPAddress:          cmd.IPAddress,
		UserAgent:          cmd.UserAgent,
		TokenExpiraAt:      now.Add(tokenTTL),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.repo.Create(ctx, q)
	if errors.Is(err, interfaces.ErrDuplicateToken) {
		// Token collision is astronomically unlikely; one fresh draw is
		// all the retry budget this needs.
		log.Printf("[quote][usecase] duplicate token on create, retrying token=%s", q.Token)
		if q.Token, err = generateQuoteToken(); err != nil {
			return entities.Quote{}, err
		}
		created, err = u.repo.Create(ctx, q)
	}
	if err != nil {
		log.Printf("[quote][usecase] create failed err=%v", err)
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] quote saved token=%s tipo_servicio=%s pago_mensual=%s", created.Token, created.TipoServicio, created.PagoMensual.StringFixed(2))

	u.sendNotifications(ctx, &created)
	return created, nil
}

func (u *QuoteUseCase) GetByToken(ctx context.Context, token string) (entities.Quote, error) {
	token = strings.TrimSpace(token)
	if !validToken(token) {
		return entities.Quote{}, ErrInvalidQuoteToken
	}

	q, err := u.repo.GetByToken(ctx, token)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Token == "" {
		return entities.Quote{}, ErrPresupuestoNotFound
	}
	return q, nil
}

// MarkUsed flags the quote behind token as consumed by the client. Calling
// it again on an already-used quote is a no-op success.
func (u *QuoteUseCase) MarkUsed(ctx context.Context, token string) (entities.Quote, error) {
	q, err := u.GetByToken(ctx, token)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.TokenUsado {
		return q, nil
	}

	if err := u.repo.MarkUsed(ctx, q.Token); err != nil {
		log.Printf("[quote][usecase] mark-used failed token=%s err=%v", q.Token, err)
		return entities.Quote{}, err
	}
	q.TokenUsado = true
	return q, nil
}

// quoteFigures is the monetary block of a quote.
type quoteFigures struct {
	SalarioBruto       decimal.Decimal
	SalarioNeto        decimal.Decimal
	CotizacionSS       decimal.Decimal
	CuotaCuidandote    decimal.Decimal
	CuotaCuidandoteIVA decimal.Decimal
	PagoMensual        decimal.Decimal
	ComisionAgencia    decimal.Decimal
	ComisionAgenciaIVA decimal.Decimal
}

// calculate resolves salary and tariff rows and derives the payment block:
//
//	pago_mensual = round(salario_neto + cotizacion_ss + cuota_con_iva, 2)
//
// Missing reference rows degrade to built-in fallbacks with a warning; only
// a transport-level repository failure aborts the quote.
func (u *QuoteUseCase) calculate(ctx context.Context, horasEquivalentes, numDias int) (quoteFigures, error) {
	rate, err := u.rates.GetSalaryByHours(ctx, horasEquivalentes)
	if err != nil {
		return quoteFigures{}, err
	}
	if rate.Horas == 0 {
		log.Printf("[quote][usecase] salary row missing horas=%d, quoting zero salary", horasEquivalentes)
	}

	cuota, err := u.tariffOrFallback(ctx, entities.TarifaCuotaMantenimiento)
	if err != nil {
		return quoteFigures{}, err
	}

	comisionConcepto := entities.TarifaComisionEstandar
	if numDias <= 1 {
		comisionConcepto = entities.TarifaComision1Dia
	}
	comision, err := u.tariffOrFallback(ctx, comisionConcepto)
	if err != nil {
		return quoteFigures{}, err
	}

	cuotaIVA := cuota.ConIVA()
	return quoteFigures{
		SalarioBruto:       rate.SalarioBruto,
		SalarioNeto:        rate.SalarioNeto,
		CotizacionSS:       rate.CotizacionSS,
		CuotaCuidandote:    cuota.Valor,
		CuotaCuidandoteIVA: cuotaIVA,
		PagoMensual:        rate.SalarioNeto.Add(rate.CotizacionSS).Add(cuotaIVA).Round(2),
		ComisionAgencia:    comision.Valor,
		ComisionAgenciaIVA: comision.ConIVA(),
	}, nil
}

func (u *QuoteUseCase) tariffOrFallback(ctx context.Context, concepto string) (entities.Tariff, error) {
	t, err := u.rates.GetTariff(ctx, concepto)
	if err != nil {
		return entities.Tariff{}, err
	}
	if t.Concepto != "" {
		return t, nil
	}

	fb, ok := entities.FallbackTariff(concepto)
	if !ok {
		return entities.Tariff{}, errors.New("tariff not found: " + concepto)
	}
	log.Printf("[quote][usecase] tariff missing concepto=%s, using fallback valor=%s", concepto, fb.Valor.StringFixed(2))
	return fb, nil
}

// sendNotifications delivers the client proposal and the admin alert. Each
// delivery is independent and best-effort; failures are logged and the
// corresponding flag stays false.
func (u *QuoteUseCase) sendNotifications(ctx context.Context, q *entities.Quote) {
	if u.mailer == nil {
		log.Printf("[quote][usecase] mailer not configured token=%s, skipping notifications", q.Token)
		return
	}

	if err := u.mailer.SendClientQuote(ctx, *q); err != nil {
		log.Printf("[quote][usecase] client mail failed token=%s err=%v", q.Token, err)
	} else {
		q.EmailEnviado = true
		q.EmailEnviadoAt = time.Now().UTC()
		if err := u.repo.MarkEmailSent(ctx, q.Token); err != nil {
			log.Printf("[quote][usecase] mark-email-sent failed token=%s err=%v", q.Token, err)
		}
	}

	if err := u.mailer.SendAdminAlert(ctx, *q); err != nil {
		log.Printf("[quote][usecase] admin mail failed token=%s err=%v", q.Token, err)
	} else {
		q.AdminNotificado = true
		q.AdminNotificadoAt = time.Now().UTC()
		if err := u.repo.MarkAdminNotified(ctx, q.Token); err != nil {
			log.Printf("[quote][usecase] mark-admin-notified failed token=%s err=%v", q.Token, err)
		}
	}
}

func validateCommand(cmd QuoteCommand) error {
	if strings.TrimSpace(cmd.Nombre) == "" {
		return ErrMissingName
	}
	if _, err := mail.ParseAddress(cmd.Email); err != nil {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(cmd.Telefono) == "" {
		return ErrMissingPhone
	}
	if len(cmd.DiasSemana) == 0 {
		return ErrMissingDays
	}
	if len(cmd.Horario) == 0 {
		return ErrMissingSchedule
	}
	if !cmd.AceptaPrivacidad {
		return ErrPrivacyNotAccepted
	}
	return nil
}

const tokenTTL = 30 * 24 * time.Hour

// generateQuoteToken builds the unguessable quote token: a v4 UUID plus an
// extra 8 random bytes, hex encoded.
func generateQuoteToken() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return uuid.NewString() + "-" + hex.EncodeToString(buf), nil
}

func validToken(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}

func marshalDays(days []string) string {
	b, err := json.Marshal(days)
	if err != nil {
		return "[]"
	}
	return string(b)
}
