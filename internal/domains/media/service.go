package media

import "context"

type Service interface {
	Create(ctx context.Context, req CreateMediaRequest) (*Media, error)
	FindAll(ctx context.Context) ([]Media, error)
	FindOne(ctx context.Context, id int64) (*Media, error)
	Update(ctx context.Context, id int64, req UpdateMediaRequest) (*Media, error)
	Remove(ctx context.Context, id int64) error
}

// PublicationChecker reports whether any publication still references a
// media. Implemented by the composition layer on top of the publication
// service so the media package never imports the publication package.
type PublicationChecker interface {
	ExistsByMediaID(ctx context.Context, mediaID int64) (bool, error)
}
