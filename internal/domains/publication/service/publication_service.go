package service

import (
	"context"
	"fmt"
	"time"

	"publisher-backend/internal/domains/media"
	"publisher-backend/internal/domains/post"
	"publisher-backend/internal/domains/publication"
)

// publicationService implements publication.Service. It is constructed last:
// the media and post services it validates references against are injected
// fully built.
type publicationService struct {
	repo   publication.Repository
	medias media.Service
	posts  post.Service
}

func NewPublicationService(repo publication.Repository, medias media.Service, posts post.Service) publication.Service {
	return &publicationService{
		repo:   repo,
		medias: medias,
		posts:  posts,
	}
}

func (s *publicationService) Create(ctx context.Context, req publication.CreatePublicationRequest) (*publication.Publication, error) {
	if err := s.checkReferences(ctx, req.MediaID, req.PostID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &publication.Publication{
		MediaID: req.MediaID,
		PostID:  req.PostID,
		Date:    req.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("create publication: %w", err)
	}
	return created, nil
}

// checkReferences validates both weak references, media first. The media and
// post not-found errors pass through untranslated so callers surface the same
// 404 they would hit fetching the entity directly.
func (s *publicationService) checkReferences(ctx context.Context, mediaID, postID int64) error {
	if _, err := s.medias.FindOne(ctx, mediaID); err != nil {
		return err
	}
	if _, err := s.posts.FindOne(ctx, postID); err != nil {
		return err
	}
	return nil
}

func (s *publicationService) FindAll(ctx context.Context, filter publication.FindFilter) ([]publication.Publication, error) {
	// Published state is derived from the clock at query time.
	filter.Now = time.Now()

	publications, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list publications: %w", err)
	}
	return publications, nil
}

func (s *publicationService) FindOne(ctx context.Context, id int64) (*publication.Publication, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find publication %d: %w", id, err)
	}
	if p == nil {
		return nil, publication.ErrPublicationNotFound
	}
	return p, nil
}

func (s *publicationService) FindOneByMediaID(ctx context.Context, mediaID int64) (*publication.Publication, error) {
	p, err := s.repo.FindFirstByMediaID(ctx, mediaID)
	if err != nil {
		return nil, fmt.Errorf("find publication by media %d: %w", mediaID, err)
	}
	return p, nil
}

func (s *publicationService) FindOneByPostID(ctx context.Context, postID int64) (*publication.Publication, error) {
	p, err := s.repo.FindFirstByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("find publication by post %d: %w", postID, err)
	}
	return p, nil
}

func (s *publicationService) Update(ctx context.Context, id int64, req publication.UpdatePublicationRequest) (*publication.Publication, error) {
	current, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	// Once the existing date has been reached the record is immutable,
	// whatever new date the caller supplies.
	if current.Published(time.Now()) {
		return nil, publication.ErrPublicationPublished
	}

	if err := s.checkReferences(ctx, req.MediaID, req.PostID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, &publication.Publication{
		MediaID: req.MediaID,
		PostID:  req.PostID,
		Date:    req.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("update publication %d: %w", id, err)
	}
	return updated, nil
}

func (s *publicationService) Remove(ctx context.Context, id int64) error {
	// Past publications stay deletable; only existence is checked.
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete publication %d: %w", id, err)
	}
	return nil
}
