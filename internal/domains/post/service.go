package post

import "context"

type Service interface {
	Create(ctx context.Context, req CreatePostRequest) (*Post, error)
	FindAll(ctx context.Context) ([]Post, error)
	FindOne(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, id int64, req UpdatePostRequest) (*Post, error)
	Remove(ctx context.Context, id int64) error
}

// PublicationChecker reports whether any publication still references a post.
// Implemented by the composition layer on top of the publication service.
type PublicationChecker interface {
	ExistsByPostID(ctx context.Context, postID int64) (bool, error)
}
