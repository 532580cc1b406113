package interfaces

import (
	"context"
	"sieeg_orders/internal/domain/entities"
)

// ITecnicoDirectory lists the shop accounts available for order assignment.
type ITecnicoDirectory interface {
	List(ctx context.Context) ([]entities.Tecnico, error)
}
