package publication

import "context"

type Service interface {
	Create(ctx context.Context, req CreatePublicationRequest) (*Publication, error)
	FindAll(ctx context.Context, filter FindFilter) ([]Publication, error)
	FindOne(ctx context.Context, id int64) (*Publication, error)

	// FindOneByMediaID and FindOneByPostID return the first publication
	// referencing the given media/post, or nil without error when there is
	// none. They back the media/post deletion guards, not a user-facing
	// lookup.
	FindOneByMediaID(ctx context.Context, mediaID int64) (*Publication, error)
	FindOneByPostID(ctx context.Context, postID int64) (*Publication, error)

	Update(ctx context.Context, id int64, req UpdatePublicationRequest) (*Publication, error)
	Remove(ctx context.Context, id int64) error
}
