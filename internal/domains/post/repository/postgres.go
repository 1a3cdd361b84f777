package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"publisher-backend/internal/domains/post"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) post.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	query := `
		INSERT INTO posts (title, text, image)
		VALUES ($1, $2, $3)
		RETURNING id, title, text, image
	`

	created := &post.Post{}
	err := r.pool.QueryRow(ctx, query, p.Title, p.Text, p.Image).
		Scan(&created.ID, &created.Title, &created.Text, &created.Image)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]post.Post, error) {
	query := `SELECT id, title, text, image FROM posts ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]post.Post, 0)
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Text, &p.Image); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	return posts, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*post.Post, error) {
	query := `SELECT id, title, text, image FROM posts WHERE id = $1`

	p := &post.Post{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Title, &p.Text, &p.Image)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query post %d: %w", id, err)
	}

	return p, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, p *post.Post) (*post.Post, error) {
	query := `
		UPDATE posts
		SET title = $1, text = $2, image = $3
		WHERE id = $4
		RETURNING id, title, text, image
	`

	updated := &post.Post{}
	err := r.pool.QueryRow(ctx, query, p.Title, p.Text, p.Image, id).
		Scan(&updated.ID, &updated.Title, &updated.Text, &updated.Image)
	if err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}
