package interfaces

import (
	"context"
	"liquidation_backoffice/internal/domain/entities"
	"liquidation_backoffice/internal/domain/query"
)

// ILiquidationRepository abstracts liquidation persistence.
//
// Not-found follows the customer repository: zero-value Liquidation, nil
// error. Pay is idempotent.

type ILiquidationRepository interface {
	List(ctx context.Context, filter entities.LiquidationFilter) (query.Page[entities.Liquidation], error)
	GetByID(ctx context.Context, id int64) (entities.Liquidation, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]entities.Liquidation, error)
	Create(ctx context.Context, fields map[string]any) (entities.Liquidation, error)
	Update(ctx context.Context, id int64, patch map[string]any) (entities.Liquidation, error)
	Pay(ctx context.Context, id int64) (entities.Liquidation, error)
	Delete(ctx context.Context, id int64) error
}
