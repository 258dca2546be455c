package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType classifies the requested caregiving pattern.
//
// Domain notes:
//   - "interna" services are live-in (24h flag in the schedule payload).
//   - "externa" services are billed by scheduled hourly slots.
//   - Classification uses the REAL weekly hours, not the hours-equivalent
//     used for the salary-table lookup.

type ServiceType string

const (
	ServiceInternaCompleta    ServiceType = "interna_completa"
	ServiceInternaEntreSemana ServiceType = "interna_entre_semana"
	ServiceInternaFinesSemana ServiceType = "interna_fines_semana"
	ServiceInternaParcial     ServiceType = "interna_parcial"
	ServiceExternaCompleta    ServiceType = "externa_jornada_completa"
	ServiceExternaParcial     ServiceType = "externa_jornada_parcial"
	ServiceExternaHoras       ServiceType = "externa_horas"
)

// Quote is the costed proposal (presupuesto) persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: token
//
// The token doubles as the public retrieval key, so uniqueness is enforced
// with a conditional put rather than a separate row id.
//
// Monetary representation:
//   - All money fields are decimals rounded to 2 places at VAT application
//     and at the monthly total.
type Quote struct {
	Token string `json:"token"`

	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
	CodigoPostal string `json:"codigo_postal"`

	TipoServicio      ServiceType  `json:"tipo_servicio"`
	TipoServicioLabel string       `json:"tipo_servicio_label"`
	DuracionTipo      string       `json:"duracion_tipo"`
	DiasSemana        string       `json:"dias_semana"`
	SemanasMes        int          `json:"semanas_mes"`
	HorarioTipo       ScheduleType `json:"horario_tipo"`
	HorarioDetalle    string       `json:"horario_detalle"`
	HorasSemanales    int          `json:"horas_semanales"`

	SalarioBruto       decimal.Decimal `json:"salario_bruto"`
	SalarioNeto        decimal.Decimal `json:"salario_neto"`
	CotizacionSS       decimal.Decimal `json:"cotizacion_ss"`
	CuotaCuidandote    decimal.Decimal `json:"cuota_cuidandote"`
	CuotaCuidandoteIVA decimal.Decimal `json:"cuota_cuidandote_iva"`
	PagoMensual        decimal.Decimal `json:"pago_mensual"`
	ComisionAgencia    decimal.Decimal `json:"comision_agencia"`
	ComisionAgenciaIVA decimal.Decimal `json:"comision_agencia_iva"`

	LlamadaFecha string `json:"llamada_fecha,omitempty"`
	LlamadaHora  string `json:"llamada_hora,omitempty"`

	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`

	EmailEnviado      bool      `json:"email_enviado"`
	EmailEnviadoAt    time.Time `json:"email_enviado_at,omitempty"`
	AdminNotificado   bool      `json:"admin_notificado"`
	AdminNotificadoAt time.Time `json:"admin_notificado_at,omitempty"`
	TokenUsado        bool      `json:"token_usado"`
	TokenUsadoAt      time.Time `json:"token_usado_at,omitempty"`
	TokenExpiraAt     time.Time `json:"token_expira_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
