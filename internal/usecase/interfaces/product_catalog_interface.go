package interfaces

import (
	"context"
	"sieeg_orders/internal/domain/entities"
)

// IProductCatalog abstracts the external product catalog queried by the
// parts-used autocomplete.
type IProductCatalog interface {
	Search(ctx context.Context, query string) ([]entities.Product, error)
}
