package interfaces

import (
	"context"
	"funeral_quote/internal/domain/entities"
)

// ISessionStore keeps configuration sessions between requests.
// Get returns a zero session (ID == "") when the id is unknown or expired.
type ISessionStore interface {
	Get(ctx context.Context, id string) (entities.QuoteSession, error)
	Put(ctx context.Context, s entities.QuoteSession) error
}
