package memory

import (
	"context"

	"petbhai-backend/internal/domain"
)

type ProductRepository struct {
	products *collection[domain.Product]
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: newCollection[domain.Product]()}
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.products.list(), nil
}

func (r *ProductRepository) Get(ctx context.Context, id int) (*domain.Product, error) {
	p, err := r.products.get(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Insert(ctx context.Context, product *domain.Product) error {
	if product.ID == 0 {
		product.ID = r.products.nextID()
	}
	return r.products.insert(product.ID, *product)
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.products.update(product.ID, *product)
}
