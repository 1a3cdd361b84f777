package media

import "context"

// Repository is the persistence gateway for medias. FindByID returns
// (nil, nil) when the id is absent; translating absence into a domain error
// is the service's job.
type Repository interface {
	Create(ctx context.Context, m *Media) (*Media, error)
	FindAll(ctx context.Context) ([]Media, error)
	FindByID(ctx context.Context, id int64) (*Media, error)
	// ExistsByTitleAndUsername reports whether a media other than excludeID
	// holds the given pair. Pass excludeID 0 on create.
	ExistsByTitleAndUsername(ctx context.Context, title, username string, excludeID int64) (bool, error)
	Update(ctx context.Context, id int64, m *Media) (*Media, error)
	Delete(ctx context.Context, id int64) error
}
