package interfaces

import (
	"context"

	"cuidandote_presupuestos/internal/domain/entities"
)

// IMailSender abstracts the outbound mail transport (e.g. SMTP).
//
// The service sends two messages per quote: the branded proposal to the
// client and an internal alert to the configured admin address. Delivery
// failures are non-fatal to the submission flow.
type IMailSender interface {
	SendClientQuote(ctx context.Context, q entities.Quote) error
	SendAdminAlert(ctx context.Context, q entities.Quote) error
}
