package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/okushnir/checkline-api/internal/domain/entity"
	domainRepo "github.com/okushnir/checkline-api/internal/domain/repository"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetOrCreateByName(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	var existing entity.Product
	err := r.db.WithContext(ctx).First(&existing, "name = ?", product.Name).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}
