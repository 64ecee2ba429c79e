package memory

import (
	"context"

	"petbhai-backend/internal/domain"
)

// The informational collections (vets, adoption listings, brands,
// articles) are seeded once at startup and read-only afterwards.

type VetRepository struct {
	vets *collection[domain.Vet]
}

func NewVetRepository(seed []domain.Vet) *VetRepository {
	r := &VetRepository{vets: newCollection[domain.Vet]()}
	for _, v := range seed {
		_ = r.vets.insert(v.ID, v)
	}
	return r
}

func (r *VetRepository) List(ctx context.Context) ([]domain.Vet, error) {
	return r.vets.list(), nil
}

func (r *VetRepository) Get(ctx context.Context, id int) (*domain.Vet, error) {
	v, err := r.vets.get(id)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

type AnimalRepository struct {
	animals *collection[domain.Animal]
}

func NewAnimalRepository(seed []domain.Animal) *AnimalRepository {
	r := &AnimalRepository{animals: newCollection[domain.Animal]()}
	for _, a := range seed {
		_ = r.animals.insert(a.ID, a)
	}
	return r
}

func (r *AnimalRepository) List(ctx context.Context) ([]domain.Animal, error) {
	return r.animals.list(), nil
}

func (r *AnimalRepository) Get(ctx context.Context, id int) (*domain.Animal, error) {
	a, err := r.animals.get(id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

type BrandRepository struct {
	brands *collection[domain.Brand]
}

func NewBrandRepository(seed []domain.Brand) *BrandRepository {
	r := &BrandRepository{brands: newCollection[domain.Brand]()}
	for _, b := range seed {
		_ = r.brands.insert(b.ID, b)
	}
	return r
}

func (r *BrandRepository) List(ctx context.Context) ([]domain.Brand, error) {
	return r.brands.list(), nil
}

func (r *BrandRepository) Get(ctx context.Context, id int) (*domain.Brand, error) {
	b, err := r.brands.get(id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

type ArticleRepository struct {
	articles *collection[domain.Article]
}

func NewArticleRepository(seed []domain.Article) *ArticleRepository {
	r := &ArticleRepository{articles: newCollection[domain.Article]()}
	for _, a := range seed {
		_ = r.articles.insert(a.ID, a)
	}
	return r
}

func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	return r.articles.list(), nil
}

func (r *ArticleRepository) Get(ctx context.Context, id int) (*domain.Article, error) {
	a, err := r.articles.get(id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
