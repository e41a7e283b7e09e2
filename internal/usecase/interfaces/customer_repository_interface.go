package interfaces

import (
	"context"
	"liquidation_backoffice/internal/domain/entities"
	"liquidation_backoffice/internal/domain/query"
)

// ICustomerRepository abstracts customer persistence.
//
// Implementations:
//   - store-backed (local key-value collection)
//   - HTTP-backed (remote back-office API)
//
// GetByID and Update return a zero-value Customer and a nil error when the id
// does not exist. Delete of an absent id succeeds.

type ICustomerRepository interface {
	List(ctx context.Context, filter entities.CustomerFilter) (query.Page[entities.Customer], error)
	GetByID(ctx context.Context, id int64) (entities.Customer, error)
	Create(ctx context.Context, fields map[string]any) (entities.Customer, error)
	Update(ctx context.Context, id int64, patch map[string]any) (entities.Customer, error)
	Delete(ctx context.Context, id int64) error
}
