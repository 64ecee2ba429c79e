package memory

import (
	"context"

	"petbhai-backend/internal/domain"
)

type PostRepository struct {
	posts *collection[domain.Post]
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: newCollection[domain.Post]()}
}

func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	all := r.posts.list()
	// community feed shows newest first
	out := make([]domain.Post, len(all))
	for i, p := range all {
		out[len(all)-1-i] = p
	}
	return out, nil
}

func (r *PostRepository) Get(ctx context.Context, id int) (*domain.Post, error) {
	p, err := r.posts.get(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) Insert(ctx context.Context, post *domain.Post) error {
	if post.ID == 0 {
		post.ID = r.posts.nextID()
	}
	return r.posts.insert(post.ID, *post)
}

func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	return r.posts.update(post.ID, *post)
}
