package postgres

import (
	"context"

	"github.com/remib/phonestore/internal/domain"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *productRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.db.WithContext(ctx).Order("id").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
