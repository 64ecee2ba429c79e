// Package repository defines the storage abstractions the handlers and
// services depend on. Implementations live in the memory and mongodb
// subpackages; route logic never touches a concrete store directly.
package repository

import (
	"context"
	"errors"

	"petbhai-backend/internal/domain"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Insert(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
}

// OrderQuery narrows and pages a user's order list. Zero values mean
// "no filter" and "no paging".
type OrderQuery struct {
	UserID string
	Status domain.OrderStatus
	Page   int
	Limit  int
}

type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	List(ctx context.Context, q OrderQuery) ([]domain.Order, int, error)
}

type PostRepository interface {
	List(ctx context.Context) ([]domain.Post, error)
	Get(ctx context.Context, id int) (*domain.Post, error)
	Insert(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
}

// Read-only informational collections, seeded at startup.

type VetRepository interface {
	List(ctx context.Context) ([]domain.Vet, error)
	Get(ctx context.Context, id int) (*domain.Vet, error)
}

type AnimalRepository interface {
	List(ctx context.Context) ([]domain.Animal, error)
	Get(ctx context.Context, id int) (*domain.Animal, error)
}

type BrandRepository interface {
	List(ctx context.Context) ([]domain.Brand, error)
	Get(ctx context.Context, id int) (*domain.Brand, error)
}

type ArticleRepository interface {
	List(ctx context.Context) ([]domain.Article, error)
	Get(ctx context.Context, id int) (*domain.Article, error)
}
