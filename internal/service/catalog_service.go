package service

import (
	"context"

	"github.com/remib/phonestore/internal/domain"
	"github.com/remib/phonestore/internal/repository"
)

// CatalogService reads the product catalog. The catalog itself is managed
// by an external process; nothing here writes to it.
type CatalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.GetAll(ctx)
}
