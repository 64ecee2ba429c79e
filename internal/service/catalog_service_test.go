package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"petbhai-backend/internal/catalog"
	"petbhai-backend/internal/domain"
)

func TestListAppliesFilters(t *testing.T) {
	products := new(MockProductRepository)
	brands := new(MockBrandRepository)
	svc := NewCatalogService(products, brands)

	products.On("List", mock.Anything).Return([]domain.Product{
		{ID: 1, Name: "Me-O Tuna", Category: domain.CategoryCatFood, Price: 500},
		{ID: 2, Name: "Pedigree", Category: domain.CategoryDogFood, Price: 700},
	}, nil)
	brands.On("List", mock.Anything).Return([]domain.Brand{}, nil)

	got, err := svc.List(context.Background(), catalog.Params{Category: domain.CategoryCatFood})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Me-O Tuna", got[0].Name)
}

func TestAddRejectsUnknownCategory(t *testing.T) {
	products := new(MockProductRepository)
	brands := new(MockBrandRepository)
	svc := NewCatalogService(products, brands)

	err := svc.Add(context.Background(), &domain.Product{Name: "Mystery Box", Category: "Surprises"})

	assert.ErrorIs(t, err, ErrInvalidCategory)
	products.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAddReviewRecomputesMeanRating(t *testing.T) {
	products := new(MockProductRepository)
	brands := new(MockBrandRepository)
	svc := NewCatalogService(products, brands)

	existing := &domain.Product{
		ID:     1,
		Name:   "Me-O Tuna",
		Rating: 4.0,
		Reviews: []domain.Review{
			{ID: 1, Rating: 4.0},
		},
	}
	products.On("Get", mock.Anything, 1).Return(existing, nil)
	products.On("Update", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)

	updated, err := svc.AddReview(context.Background(), 1, "rifat", 5.0, "my cat approves")

	require.NoError(t, err)
	require.Len(t, updated.Reviews, 2)
	// mean of 4.0 and 5.0, one decimal place
	assert.Equal(t, 4.5, updated.Rating)
	assert.Equal(t, 2, updated.Reviews[1].ID)
}

func TestAddReviewRoundsToOneDecimal(t *testing.T) {
	products := new(MockProductRepository)
	brands := new(MockBrandRepository)
	svc := NewCatalogService(products, brands)

	existing := &domain.Product{
		ID: 1,
		Reviews: []domain.Review{
			{ID: 1, Rating: 5.0},
			{ID: 2, Rating: 4.0},
		},
	}
	products.On("Get", mock.Anything, 1).Return(existing, nil)
	products.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.AddReview(context.Background(), 1, "tanvir", 5.0, "")

	require.NoError(t, err)
	// mean of 5, 4, 5 is 4.666..., displayed as 4.7
	assert.Equal(t, 4.7, updated.Rating)
}

func TestAddReviewRejectsOutOfRangeRating(t *testing.T) {
	products := new(MockProductRepository)
	brands := new(MockBrandRepository)
	svc := NewCatalogService(products, brands)

	_, err := svc.AddReview(context.Background(), 1, "x", 5.5, "")
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.AddReview(context.Background(), 1, "x", -1, "")
	assert.ErrorIs(t, err, ErrInvalidRating)

	products.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
