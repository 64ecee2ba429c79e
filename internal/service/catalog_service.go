package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"petbhai-backend/internal/catalog"
	"petbhai-backend/internal/domain"
	"petbhai-backend/internal/repository"
)

var (
	ErrInvalidRating   = errors.New("rating must be between 0 and 5")
	ErrInvalidCategory = errors.New("unknown product category")
)

type CatalogService struct {
	products repository.ProductRepository
	brands   repository.BrandRepository
}

func NewCatalogService(products repository.ProductRepository, brands repository.BrandRepository) *CatalogService {
	return &CatalogService{products: products, brands: brands}
}

// List returns the catalog narrowed and ordered by the shop filters.
func (s *CatalogService) List(ctx context.Context, params catalog.Params) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	brands, err := s.brands.List(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Apply(products, brands, params), nil
}

func (s *CatalogService) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *CatalogService) Add(ctx context.Context, product *domain.Product) error {
	if !domain.ValidCategory(product.Category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, product.Category)
	}
	return s.products.Insert(ctx, product)
}

// AddReview appends a review and recomputes the product rating as the
// arithmetic mean of all review ratings, rounded to one decimal place
// (the precision the storefront displays).
func (s *CatalogService) AddReview(ctx context.Context, productID int, author string, rating float64, comment string) (*domain.Product, error) {
	if rating < 0 || rating > 5 {
		return nil, ErrInvalidRating
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Reviews = append(product.Reviews, domain.Review{
		ID:        len(product.Reviews) + 1,
		Author:    author,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	})

	sum := 0.0
	for _, r := range product.Reviews {
		sum += r.Rating
	}
	mean := sum / float64(len(product.Reviews))
	product.Rating = math.Round(mean*10) / 10

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}
	return product, nil
}
