package publication

import (
	"context"
	"time"
)

// FindFilter narrows FindAll. Published is tri-state: true keeps publications
// dated before Now, false keeps those dated after Now, nil keeps all. After,
// when set, additionally requires the date to be strictly after it on every
// branch. Now is the reference instant the published state is derived from.
type FindFilter struct {
	Published *bool
	After     *time.Time
	Now       time.Time
}

// Repository is the persistence gateway for publications. The ByID/ByMediaID/
// ByPostID lookups return (nil, nil) when nothing matches.
type Repository interface {
	Create(ctx context.Context, p *Publication) (*Publication, error)
	FindAll(ctx context.Context, filter FindFilter) ([]Publication, error)
	FindByID(ctx context.Context, id int64) (*Publication, error)
	FindFirstByMediaID(ctx context.Context, mediaID int64) (*Publication, error)
	FindFirstByPostID(ctx context.Context, postID int64) (*Publication, error)
	Update(ctx context.Context, id int64, p *Publication) (*Publication, error)
	Delete(ctx context.Context, id int64) error
}
