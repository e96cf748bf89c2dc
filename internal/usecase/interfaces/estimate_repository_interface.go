package interfaces

import (
	"context"
	"funeral_quote/internal/domain/entities"
)

// IEstimateRepository abstracts persistence of saved estimates.
//
// Estimates are insert-only:
//   - Create assigns the integer id and creation time and returns the stored row
//   - GetByID returns a zero Estimate (ID == 0) when the id is unknown

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id int64) (entities.Estimate, error)
}
