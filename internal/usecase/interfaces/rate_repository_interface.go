package interfaces

import (
	"context"

	"cuidandote_presupuestos/internal/domain/entities"
)

// IRateRepository abstracts the read-only reference tables consulted during
// quote calculation: the hours -> salary table and the named tariffs.
//
// A missing row is not an error: both getters return a zero-value entity
// and nil, leaving the fallback decision to the calculator.
type IRateRepository interface {
	GetSalaryByHours(ctx context.Context, horas int) (entities.SalaryRate, error)
	GetTariff(ctx context.Context, concepto string) (entities.Tariff, error)
}
