package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"publisher-backend/internal/domains/media"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) media.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, m *media.Media) (*media.Media, error) {
	query := `
		INSERT INTO medias (title, username)
		VALUES ($1, $2)
		RETURNING id, title, username
	`

	created := &media.Media{}
	err := r.pool.QueryRow(ctx, query, m.Title, m.Username).
		Scan(&created.ID, &created.Title, &created.Username)
	if err != nil {
		// Two concurrent creates can both pass the service-level duplicate
		// check; the unique index catches the loser here.
		if isUniqueViolation(err) {
			return nil, media.ErrMediaTaken
		}
		return nil, fmt.Errorf("insert media: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]media.Media, error) {
	query := `SELECT id, title, username FROM medias ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query medias: %w", err)
	}
	defer rows.Close()

	medias := make([]media.Media, 0)
	for rows.Next() {
		var m media.Media
		if err := rows.Scan(&m.ID, &m.Title, &m.Username); err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		medias = append(medias, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate medias: %w", err)
	}

	return medias, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*media.Media, error) {
	query := `SELECT id, title, username FROM medias WHERE id = $1`

	m := &media.Media{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.Title, &m.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query media %d: %w", id, err)
	}

	return m, nil
}

func (r *postgresRepository) ExistsByTitleAndUsername(ctx context.Context, title, username string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM medias
			WHERE title = $1 AND username = $2 AND id <> $3
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, title, username, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check media exists: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, m *media.Media) (*media.Media, error) {
	query := `
		UPDATE medias
		SET title = $1, username = $2
		WHERE id = $3
		RETURNING id, title, username
	`

	updated := &media.Media{}
	err := r.pool.QueryRow(ctx, query, m.Title, m.Username, id).
		Scan(&updated.ID, &updated.Title, &updated.Username)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, media.ErrMediaTaken
		}
		return nil, fmt.Errorf("update media %d: %w", id, err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM medias WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete media %d: %w", id, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
