package interfaces

import (
	"context"
	"errors"

	"cuidandote_presupuestos/internal/domain/entities"
)

// ErrDuplicateToken is returned by Create when the storage-level uniqueness
// constraint on the token rejects the write. Callers regenerate the token
// and retry once before giving up.
var ErrDuplicateToken = errors.New("quote token already exists")

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Contract notes:
//   - GetByToken returns a zero-value Quote (empty Token) both when no row
//     matches and when the row's token_expira_at is in the past. Expiry is
//     enforced at read time; rows are never deleted by the service.
//   - The Mark* operations only flip their flag and timestamp; the first
//     marking wins and repeats are no-ops.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByToken(ctx context.Context, token string) (entities.Quote, error)
	MarkUsed(ctx context.Context, token string) error
	MarkEmailSent(ctx context.Context, token string) error
	MarkAdminNotified(ctx context.Context, token string) error
	Ping(ctx context.Context) error
}
