package mail

import (
	"bytes"
	"html/template"
	"strings"

	"cuidandote_presupuestos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const clientQuoteSubject = "🏠 Tu Propuesta de Asistencia - Cuidándote Servicios Auxiliares"

var clientQuoteTmpl = template.Must(template.New("client_quote").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<title>Propuesta de Asistencia - Cuidándote</title>
</head>
<body style="margin:0;padding:0;background-color:#f5f5f5;font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#f5f5f5;">
<tr><td align="center" style="padding:20px 10px;">
<table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px;width:100%;background-color:#ffffff;border-radius:12px;overflow:hidden;">
<tr><td style="background:linear-gradient(135deg,#2c8cbe 0%,#1a5276 100%);padding:30px;text-align:center;">
<h1 style="margin:0;color:#ffffff;font-size:28px;font-weight:600;">Propuesta de Asistencia</h1>
</td></tr>
<tr><td style="padding:40px 30px;">
<p style="margin:0 0 20px;color:#333;font-size:16px;line-height:1.6;">Estimado/a <strong>{{.Nombre}}</strong>,</p>
<p style="margin:0 0 30px;color:#555;font-size:15px;line-height:1.7;">Te compartimos el enlace a tu presupuesto personalizado. Adicionalmente, un consultor te estará asesorando sin compromiso para ayudarte a encontrar las mejores modalidades de servicio según tus necesidades.</p>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin-bottom:30px;">
<tr><td style="background:#f8f9fa;border-radius:12px;padding:25px;text-align:center;">
<p style="margin:0 0 5px;color:#667eea;font-size:13px;font-weight:600;text-transform:uppercase;">Servicio solicitado</p>
<p style="margin:0 0 20px;color:#333;font-size:16px;">{{.Servicio}}</p>
<p style="margin:0 0 5px;color:#667eea;font-size:13px;font-weight:600;">Pago mensual para el cuidador/a</p>
<p style="margin:0;color:#2c8cbe;font-size:36px;font-weight:700;">{{.PagoMensual}}/mes</p>
</td></tr>
</table>
<p style="margin:0 0 25px;color:#555;font-size:15px;line-height:1.7;text-align:center;">Si tienes cualquier duda o deseas ajustar algún detalle, estaremos encantados de ayudarte.</p>
<p style="margin:0 0 30px;color:#555;font-size:15px;text-align:center;">Un cordial saludo,<br><strong>Equipo Cuidándote</strong></p>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0">
<tr><td align="center">
<a href="{{.URLDetalle}}" style="display:inline-block;background:linear-gradient(135deg,#2c8cbe 0%,#1a5276 100%);color:#ffffff;padding:16px 40px;border-radius:30px;text-decoration:none;font-size:16px;font-weight:600;">Detalle Presupuesto</a>
</td></tr>
</table>
</td></tr>
<tr><td style="padding:20px 30px;background:#f8f9fa;text-align:center;">
<p style="margin:0 0 10px;color:#888;font-size:12px;">Nº Agencia de Colocación: 1300000329</p>
<p style="margin:0;color:#2c8cbe;font-size:14px;font-weight:600;">AVALADOS POR LA COMUNIDAD DE MADRID</p>
</td></tr>
<tr><td style="background:linear-gradient(135deg,#1a5276 0%,#0d3d56 100%);padding:25px 30px;text-align:center;">
<p style="margin:0 0 5px;color:#ffffff;font-size:18px;font-weight:700;">CUIDADO DE MAYORES</p>
<p style="margin:0 0 15px;color:rgba(255,255,255,0.8);font-size:13px;">Un servicio profesional de CALIDAD y TRATO HUMANO.</p>
<p style="margin:0;"><a href="tel:+34911336833" style="color:#ffffff;text-decoration:none;font-size:20px;font-weight:600;">📞 911 33 68 33</a></p>
<p style="margin:10px 0 0;color:rgba(255,255,255,0.7);font-size:13px;">Cuidándote Servicios Auxiliares</p>
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>`))

var adminAlertTmpl = template.Must(template.New("admin_alert").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<title>Nuevo Presupuesto Solicitado</title>
</head>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#f5f5f5;">
<table role="presentation" cellpadding="0" cellspacing="0" width="100%" style="background-color:#f5f5f5;padding:20px 0;">
<tr><td align="center">
<table role="presentation" cellpadding="0" cellspacing="0" width="600" style="background-color:#ffffff;border-radius:8px;">
<tr><td style="background:linear-gradient(135deg,#0B8547 0%,#256D9B 100%);padding:30px;text-align:center;border-radius:8px 8px 0 0;">
<h1 style="margin:0;color:#ffffff;font-size:24px;font-weight:bold;">🔔 Nuevo Presupuesto Solicitado</h1>
</td></tr>
<tr><td style="padding:30px;">
<p style="margin:0 0 20px 0;font-size:16px;color:#333;">Se ha recibido una nueva solicitud de presupuesto:</p>
<table role="presentation" cellpadding="0" cellspacing="0" width="100%" style="margin-bottom:20px;border:1px solid #e0e0e0;border-radius:6px;">
<tr style="background-color:#f8f9fa;"><td colspan="2" style="padding:15px;border-bottom:1px solid #e0e0e0;"><h2 style="margin:0;font-size:18px;color:#256D9B;">👤 Datos del Cliente</h2></td></tr>
<tr><td style="padding:12px 15px;font-weight:bold;color:#666;width:40%;">Nombre:</td><td style="padding:12px 15px;color:#333;">{{.Nombre}}</td></tr>
<tr><td style="padding:12px 15px;font-weight:bold;color:#666;">Email:</td><td style="padding:12px 15px;"><a href="mailto:{{.Email}}" style="color:#667eea;text-decoration:none;">{{.Email}}</a></td></tr>
<tr><td style="padding:12px 15px;font-weight:bold;color:#666;">Teléfono:</td><td style="padding:12px 15px;"><a href="tel:{{.Telefono}}" style="color:#667eea;text-decoration:none;">{{.Telefono}}</a></td></tr>
<tr><td style="padding:12px 15px;font-weight:bold;color:#666;">Código Postal:</td><td style="padding:12px 15px;color:#333;">{{.CodigoPostal}}</td></tr>
</table>
<table role="presentation" cellpadding="0" cellspacing="0" width="100%" style="margin-bottom:20px;border:1px solid #e0e0e0;border-radius:6px;">
<tr style="background-color:#f8f9fa;"><td colspan="2" style="padding:15px;border-bottom:1px solid #e0e0e0;"><h2 style="margin:0;font-size:18px;color:#256D9B;">📋 Servicio Solicitado</h2></td></tr>
<tr><td style="padding:12px 15px;font-weight:bold;color:#666;width:40%;">Tipo de Servicio:</td><td style="padding:12px 15px;color:#333;">{{.TipoServicio}}</td></tr>
<tr><td style="padding:12px 15px;font-weight:bold;color:#666;">Horas Semanales:</td><td style="padding:12px 15px;color:#333;">{{.HorasSemanales}} horas</td></tr>
<tr><td style="padding:12px 15px;font-weight:bold;color:#666;">Pago Mensual:</td><td style="padding:12px 15px;color:#333;">{{.PagoMensual}}</td></tr>
<tr><td style="padding:12px 15px;font-weight:bold;color:#666;">Llamada Programada:</td><td style="padding:12px 15px;color:#333;">{{.Llamada}}</td></tr>
<tr><td style="padding:12px 15px;font-weight:bold;color:#666;">Fecha Solicitud:</td><td style="padding:12px 15px;color:#333;">{{.FechaSolicitud}}</td></tr>
</table>
<p style="margin:0;font-size:14px;color:#666;">Token: {{.Token}}</p>
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>`))

type clientQuoteData struct {
	Nombre      string
	Servicio    string
	PagoMensual string
	URLDetalle  string
}

type adminAlertData struct {
	Nombre         string
	Email          string
	Telefono       string
	CodigoPostal   string
	TipoServicio   string
	HorasSemanales int
	PagoMensual    string
	Llamada        string
	FechaSolicitud string
	Token          string
}

// renderClientQuote produces the subject and HTML body of the proposal mail
// sent to the client.
func renderClientQuote(q entities.Quote, urlDetalle string) (string, string, error) {
	data := clientQuoteData{
		Nombre:      q.Nombre,
		Servicio:    q.TipoServicioLabel,
		PagoMensual: formatEuro(q.PagoMensual),
		URLDetalle:  urlDetalle,
	}

	var buf bytes.Buffer
	if err := clientQuoteTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return clientQuoteSubject, buf.String(), nil
}

// renderAdminAlert produces the internal notification mail.
func renderAdminAlert(q entities.Quote) (string, string, error) {
	llamada := "No programada"
	if q.LlamadaFecha != "" {
		llamada = q.LlamadaFecha
		if q.LlamadaHora != "" {
			llamada += " " + q.LlamadaHora
		}
	}
	codigoPostal := q.CodigoPostal
	if codigoPostal == "" {
		codigoPostal = "No especificado"
	}

	data := adminAlertData{
		Nombre:         q.Nombre,
		Email:          q.Email,
		Telefono:       q.Telefono,
		CodigoPostal:   codigoPostal,
		TipoServicio:   q.TipoServicioLabel,
		HorasSemanales: q.HorasSemanales,
		PagoMensual:    formatEuro(q.PagoMensual),
		Llamada:        llamada,
		FechaSolicitud: q.CreatedAt.Format("02/01/2006 15:04"),
		Token:          q.Token,
	}

	var buf bytes.Buffer
	if err := adminAlertTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return "🔔 Nuevo presupuesto solicitado - " + q.Nombre, buf.String(), nil
}

// formatEuro renders a decimal amount in Spanish convention: thousands
// separated by dots, comma decimals, trailing euro sign. 1762.84 -> "1.762,84€".
func formatEuro(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	b.WriteString("€")
	return b.String()
}
