package service

import (
	"context"
	"fmt"

	"publisher-backend/internal/domains/post"
)

// postService implements post.Service.
type postService struct {
	repo         post.Repository
	publications post.PublicationChecker
}

func NewPostService(repo post.Repository, publications post.PublicationChecker) post.Service {
	return &postService{
		repo:         repo,
		publications: publications,
	}
}

func (s *postService) Create(ctx context.Context, req post.CreatePostRequest) (*post.Post, error) {
	created, err := s.repo.Create(ctx, &post.Post{
		Title: req.Title,
		Text:  req.Text,
		Image: req.Image,
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return created, nil
}

func (s *postService) FindAll(ctx context.Context) ([]post.Post, error) {
	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *postService) FindOne(ctx context.Context, id int64) (*post.Post, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find post %d: %w", id, err)
	}
	if p == nil {
		return nil, post.ErrPostNotFound
	}
	return p, nil
}

func (s *postService) Update(ctx context.Context, id int64, req post.UpdatePostRequest) (*post.Post, error) {
	if _, err := s.FindOne(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, &post.Post{
		Title: req.Title,
		Text:  req.Text,
		Image: req.Image,
	})
	if err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}
	return updated, nil
}

func (s *postService) Remove(ctx context.Context, id int64) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}

	referenced, err := s.publications.ExistsByPostID(ctx, id)
	if err != nil {
		return fmt.Errorf("check publication references: %w", err)
	}
	if referenced {
		return post.ErrPostInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}
