package entities

import "github.com/shopspring/decimal"

// SalaryRate is one row of the hours -> salary reference table
// (tabla salarial). Exactly 40 rows exist, keyed by weekly hours 1..40.
//
// Storage model (DynamoDB):
//   - PK: horas_semanales (number)
type SalaryRate struct {
	Horas        int             `json:"horas_semanales"`
	Label        string          `json:"horas_jornada_label"`
	SalarioBruto decimal.Decimal `json:"salario_bruto_mensual"`
	SalarioNeto  decimal.Decimal `json:"salario_neto_mensual"`
	CotizacionSS decimal.Decimal `json:"cotizacion_ss"`
}

// Tariff is a named, VAT-bearing fee concept independent of the salary table.
//
// Storage model (DynamoDB):
//   - PK: concepto (string)
type Tariff struct {
	Concepto    string          `json:"concepto"`
	Valor       decimal.Decimal `json:"valor"`
	IVA         decimal.Decimal `json:"iva"`
	Descripcion string          `json:"descripcion,omitempty"`
	Activo      bool            `json:"activo"`
}

// The closed set of fee concepts the calculator understands. Free-text
// lookups are not allowed: a typo would silently price a concept at zero.
const (
	TarifaCuotaMantenimiento       = "cuota_mantenimiento"
	TarifaComisionEstandar         = "comision_agencia_estandar"
	TarifaComision1Dia             = "comision_agencia_1dia"
	TarifaDescuentoSegundoCuidador = "descuento_segundo_cuidador"
	TarifaSADSinCheque             = "sad_sin_cheque"
	TarifaSADChequeMenor80h        = "sad_cheque_menor_80h"
	TarifaSADChequeMayor80h        = "sad_cheque_mayor_80h"
	TarifaIncrementoPareja         = "incremento_pareja"
)

// FallbackTariff returns the documented default for a known concept, used
// when the tariffs table has no active row for it. The second return is
// false for concepts without a defined fallback.
func FallbackTariff(concepto string) (Tariff, bool) {
	switch concepto {
	case TarifaCuotaMantenimiento:
		return Tariff{Concepto: concepto, Valor: decimal.NewFromFloat(65.00), IVA: decimal.NewFromInt(21), Activo: true}, true
	case TarifaComisionEstandar:
		return Tariff{Concepto: concepto, Valor: decimal.NewFromInt(300), IVA: decimal.NewFromInt(21), Activo: true}, true
	case TarifaComision1Dia:
		return Tariff{Concepto: concepto, Valor: decimal.NewFromInt(50), IVA: decimal.NewFromInt(21), Activo: true}, true
	default:
		return Tariff{}, false
	}
}

// ConIVA applies the tariff's VAT rate to its base value, rounded to cents.
func (t Tariff) ConIVA() decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	return t.Valor.Mul(hundred.Add(t.IVA)).Div(hundred).Round(2)
}
