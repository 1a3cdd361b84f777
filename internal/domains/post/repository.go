package post

import "context"

// Repository is the persistence gateway for posts. FindByID returns
// (nil, nil) when the id is absent.
type Repository interface {
	Create(ctx context.Context, p *Post) (*Post, error)
	FindAll(ctx context.Context) ([]Post, error)
	FindByID(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, id int64, p *Post) (*Post, error)
	Delete(ctx context.Context, id int64) error
}
