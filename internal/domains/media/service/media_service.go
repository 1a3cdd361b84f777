package service

import (
	"context"
	"fmt"

	"publisher-backend/internal/domains/media"
)

// mediaService implements media.Service.
type mediaService struct {
	repo         media.Repository
	publications media.PublicationChecker
}

func NewMediaService(repo media.Repository, publications media.PublicationChecker) media.Service {
	return &mediaService{
		repo:         repo,
		publications: publications,
	}
}

func (s *mediaService) Create(ctx context.Context, req media.CreateMediaRequest) (*media.Media, error) {
	taken, err := s.repo.ExistsByTitleAndUsername(ctx, req.Title, req.Username, 0)
	if err != nil {
		return nil, fmt.Errorf("check media exists: %w", err)
	}
	if taken {
		return nil, media.ErrMediaTaken
	}

	created, err := s.repo.Create(ctx, &media.Media{
		Title:    req.Title,
		Username: req.Username,
	})
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return created, nil
}

func (s *mediaService) FindAll(ctx context.Context) ([]media.Media, error) {
	medias, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medias: %w", err)
	}
	return medias, nil
}

func (s *mediaService) FindOne(ctx context.Context, id int64) (*media.Media, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find media %d: %w", id, err)
	}
	if m == nil {
		return nil, media.ErrMediaNotFound
	}
	return m, nil
}

func (s *mediaService) Update(ctx context.Context, id int64, req media.UpdateMediaRequest) (*media.Media, error) {
	if _, err := s.FindOne(ctx, id); err != nil {
		return nil, err
	}

	// The record being updated is excluded from the duplicate check so an
	// update that keeps the current values succeeds.
	taken, err := s.repo.ExistsByTitleAndUsername(ctx, req.Title, req.Username, id)
	if err != nil {
		return nil, fmt.Errorf("check media exists: %w", err)
	}
	if taken {
		return nil, media.ErrMediaTaken
	}

	updated, err := s.repo.Update(ctx, id, &media.Media{
		Title:    req.Title,
		Username: req.Username,
	})
	if err != nil {
		return nil, fmt.Errorf("update media %d: %w", id, err)
	}
	return updated, nil
}

func (s *mediaService) Remove(ctx context.Context, id int64) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}

	referenced, err := s.publications.ExistsByMediaID(ctx, id)
	if err != nil {
		return fmt.Errorf("check publication references: %w", err)
	}
	if referenced {
		return media.ErrMediaInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete media %d: %w", id, err)
	}
	return nil
}
