package response

import (
	"time"

	"cuidandote_presupuestos/internal/domain/entities"
)

// QuoteSummaryResponse is the short block echoed back right after creation.
type QuoteSummaryResponse struct {
	TipoServicio   string  `json:"tipo_servicio"`
	PagoMensual    float64 `json:"pago_mensual"`
	HorasSemanales int     `json:"horas_semanales"`
}

type CreateQuoteResponse struct {
	Success      bool                 `json:"success"`
	Message      string               `json:"message"`
	Token        string               `json:"token"`
	RedirectURL  string               `json:"redirect_url"`
	EmailEnviado bool                 `json:"email_enviado"`
	Presupuesto  QuoteSummaryResponse `json:"presupuesto"`
}

func FromQuoteCreated(q entities.Quote, redirectURL string) CreateQuoteResponse {
	return CreateQuoteResponse{
		Success:      true,
		Message:      "Presupuesto creado correctamente",
		Token:        q.Token,
		RedirectURL:  redirectURL,
		EmailEnviado: q.EmailEnviado,
		Presupuesto: QuoteSummaryResponse{
			TipoServicio:   q.TipoServicioLabel,
			PagoMensual:    q.PagoMensual.InexactFloat64(),
			HorasSemanales: q.HorasSemanales,
		},
	}
}

type MarkUsedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// HealthResponse is the payload of the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// QuoteResponse is the full proposal as served to the detail page.
type QuoteResponse struct {
	Token string `json:"token"`

	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
	CodigoPostal string `json:"codigo_postal,omitempty"`

	TipoServicio      string `json:"tipo_servicio"`
	TipoServicioLabel string `json:"tipo_servicio_label"`
	DuracionTipo      string `json:"duracion_tipo"`
	DiasSemana        string `json:"dias_semana"`
	SemanasMes        int    `json:"semanas_mes"`
	HorarioTipo       string `json:"horario_tipo"`
	HorarioDetalle    string `json:"horario_detalle"`
	HorasSemanales    int    `json:"horas_semanales"`

	SalarioBruto       float64 `json:"salario_bruto"`
	SalarioNeto        float64 `json:"salario_neto"`
	CotizacionSS       float64 `json:"cotizacion_ss"`
	CuotaCuidandote    float64 `json:"cuota_cuidandote"`
	CuotaCuidandoteIVA float64 `json:"cuota_cuidandote_iva"`
	PagoMensual        float64 `json:"pago_mensual"`
	ComisionAgencia    float64 `json:"comision_agencia"`
	ComisionAgenciaIVA float64 `json:"comision_agencia_iva"`

	LlamadaFecha string `json:"llamada_fecha,omitempty"`
	LlamadaHora  string `json:"llamada_hora,omitempty"`

	TokenUsado    bool      `json:"token_usado"`
	TokenExpiraAt time.Time `json:"token_expira_at"`
	CreatedAt     time.Time `json:"created_at"`
}

type GetQuoteResponse struct {
	Success     bool          `json:"success"`
	Presupuesto QuoteResponse `json:"presupuesto"`
}

func FromQuote(q entities.Quote) GetQuoteResponse {
	return GetQuoteResponse{
		Success: true,
		Presupuesto: QuoteResponse{
			Token:              q.Token,
			Nombre:             q.Nombre,
			Email:              q.Email,
			Telefono:           q.Telefono,
			CodigoPostal:       q.CodigoPostal,
			TipoServicio:       string(q.TipoServicio),
			TipoServicioLabel:  q.TipoServicioLabel,
			DuracionTipo:       q.DuracionTipo,
			DiasSemana:         q.DiasSemana,
			SemanasMes:         q.SemanasMes,
			HorarioTipo:        string(q.HorarioTipo),
			HorarioDetalle:     q.HorarioDetalle,
			HorasSemanales:     q.HorasSemanales,
			SalarioBruto:       q.SalarioBruto.InexactFloat64(),
			SalarioNeto:        q.SalarioNeto.InexactFloat64(),
			CotizacionSS:       q.CotizacionSS.InexactFloat64(),
			CuotaCuidandote:    q.CuotaCuidandote.InexactFloat64(),
			CuotaCuidandoteIVA: q.CuotaCuidandoteIVA.InexactFloat64(),
			PagoMensual:        q.PagoMensual.InexactFloat64(),
			ComisionAgencia:    q.ComisionAgencia.InexactFloat64(),
			ComisionAgenciaIVA: q.ComisionAgenciaIVA.InexactFloat64(),
			LlamadaFecha:       q.LlamadaFecha,
			LlamadaHora:        q.LlamadaHora,
			TokenUsado:         q.TokenUsado,
			TokenExpiraAt:      q.TokenExpiraAt,
			CreatedAt:          q.CreatedAt,
		},
	}
}
