package interfaces

import (
	"context"
	"funeral_quote/internal/domain/entities"
)

// ICatalogRepository provides the catalog snapshot: plans, items ordered by
// display order, and attendee options.
type ICatalogRepository interface {
	Load(ctx context.Context) (entities.Catalog, error)
}
