package repository

import (
	"context"
	"fmt"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"sync"
)

type catalogRepository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	order    []string
}

func NewCatalog() port.CatalogRepository {
	return &catalogRepository{
		products: make(map[string]*domain.Product),
	}
}

func (r *catalogRepository) AddProduct(ctx context.Context, product *domain.Product) error {
	if product == nil {
		return fmt.Errorf("product is nil")
	}
	name := product.Name()
	if name == "" {
		return fmt.Errorf("name is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[name]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateProduct, name)
	}

	r.products[name] = product
	r.order = append(r.order, name)

	return nil
}

// GetProduct returns the shared product so carts observe later stock changes.
func (r *catalogRepository) GetProduct(ctx context.Context, name string) (*domain.Product, error) {
	if name == "" {
		return nil, fmt.Errorf("name is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, name)
	}

	return product, nil
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, 0, len(r.order))
	for _, name := range r.order {
		products = append(products, r.products[name])
	}

	return products, nil
}
