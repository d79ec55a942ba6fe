package port

import (
	"context"
	"github.com/nikolayk812/checkout-demo/internal/domain"
)

type CatalogRepository interface {
	AddProduct(ctx context.Context, product *domain.Product) error
	GetProduct(ctx context.Context, name string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}
