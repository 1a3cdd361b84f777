package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"publisher-backend/internal/domains/publication"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) publication.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, p *publication.Publication) (*publication.Publication, error) {
	query := `
		INSERT INTO publications (media_id, post_id, date)
		VALUES ($1, $2, $3)
		RETURNING id, media_id, post_id, date
	`

	created := &publication.Publication{}
	err := r.pool.QueryRow(ctx, query, p.MediaID, p.PostID, p.Date).
		Scan(&created.ID, &created.MediaID, &created.PostID, &created.Date)
	if err != nil {
		return nil, fmt.Errorf("insert publication: %w", err)
	}

	return created, nil
}

// FindAll applies the tri-state published filter against filter.Now and the
// uniform after bound in a single WHERE clause:
// published=true keeps date < now, published=false keeps date > now, unset
// keeps everything; after, when present, requires date > after on all
// branches.
func (r *postgresRepository) FindAll(ctx context.Context, filter publication.FindFilter) ([]publication.Publication, error) {
	query := `
		SELECT id, media_id, post_id, date
		FROM publications
		WHERE ($1::boolean IS NULL OR ($1 AND date < $2) OR (NOT $1 AND date > $2))
		  AND ($3::timestamptz IS NULL OR date > $3)
		ORDER BY id ASC
	`

	rows, err := r.pool.Query(ctx, query, filter.Published, filter.Now, filter.After)
	if err != nil {
		return nil, fmt.Errorf("query publications: %w", err)
	}
	defer rows.Close()

	publications := make([]publication.Publication, 0)
	for rows.Next() {
		var p publication.Publication
		if err := rows.Scan(&p.ID, &p.MediaID, &p.PostID, &p.Date); err != nil {
			return nil, fmt.Errorf("scan publication: %w", err)
		}
		publications = append(publications, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate publications: %w", err)
	}

	return publications, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*publication.Publication, error) {
	query := `SELECT id, media_id, post_id, date FROM publications WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *postgresRepository) FindFirstByMediaID(ctx context.Context, mediaID int64) (*publication.Publication, error) {
	query := `
		SELECT id, media_id, post_id, date
		FROM publications
		WHERE media_id = $1
		ORDER BY id ASC
		LIMIT 1
	`
	return r.findOne(ctx, query, mediaID)
}

func (r *postgresRepository) FindFirstByPostID(ctx context.Context, postID int64) (*publication.Publication, error) {
	query := `
		SELECT id, media_id, post_id, date
		FROM publications
		WHERE post_id = $1
		ORDER BY id ASC
		LIMIT 1
	`
	return r.findOne(ctx, query, postID)
}

func (r *postgresRepository) findOne(ctx context.Context, query string, arg int64) (*publication.Publication, error) {
	p := &publication.Publication{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(&p.ID, &p.MediaID, &p.PostID, &p.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query publication: %w", err)
	}

	return p, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, p *publication.Publication) (*publication.Publication, error) {
	query := `
		UPDATE publications
		SET media_id = $1, post_id = $2, date = $3
		WHERE id = $4
		RETURNING id, media_id, post_id, date
	`

	updated := &publication.Publication{}
	err := r.pool.QueryRow(ctx, query, p.MediaID, p.PostID, p.Date, id).
		Scan(&updated.ID, &updated.MediaID, &updated.PostID, &updated.Date)
	if err != nil {
		return nil, fmt.Errorf("update publication %d: %w", id, err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM publications WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete publication %d: %w", id, err)
	}
	return nil
}
