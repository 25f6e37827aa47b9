package repository

import (
	"context"

	"github.com/okushnir/checkline-api/internal/domain/entity"
)

// ProductRepository defines the interface for product catalog operations
type ProductRepository interface {
	// GetOrCreateByName returns the product with the given name, inserting it
	// with the supplied price when it does not exist yet. An existing
	// product keeps its stored price.
	GetOrCreateByName(ctx context.Context, product *entity.Product) (*entity.Product, error)
}
