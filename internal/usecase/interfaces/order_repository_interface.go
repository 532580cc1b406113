package interfaces

import (
	"context"
	"sieeg_orders/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Conventions follow the rest of the service: a lookup that finds nothing
// returns a zero-value Order and a nil error; Save of a missing id also
// returns a zero value. Callers translate that into not-found.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByFolio(ctx context.Context, folio string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	ListDeleted(ctx context.Context) ([]entities.Order, error)
	Save(ctx context.Context, o entities.Order) (entities.Order, error)
}
