package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cppla/miniblog/models"
)

// PostgresStore keeps posts in a Postgres table through database/sql and the pgx driver.
type PostgresStore struct {
	db *sql.DB

	scanQuery   string
	getQuery    string
	upsertQuery string
	deleteQuery string
}

func NewPostgresStore(db *sql.DB, table string) *PostgresStore {
	t := pgx.Identifier{table}.Sanitize()
	return &PostgresStore{
		db:        db,
		scanQuery: `SELECT id, title, content, created_at FROM ` + t,
		getQuery:  `SELECT id, title, content, created_at FROM ` + t + ` WHERE id = $1`,
		upsertQuery: `INSERT INTO ` + t + ` (id, title, content, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			created_at = EXCLUDED.created_at`,
		deleteQuery: `DELETE FROM ` + t + ` WHERE id = $1`,
	}
}

func (s *PostgresStore) ScanAll(ctx context.Context) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx, s.scanQuery)
	if err != nil {
		return nil, fmt.Errorf("postgres scan: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.ModifiedAt); err != nil {
			return nil, fmt.Errorf("postgres scan row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres scan: %w", err)
	}
	return posts, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	err := s.db.QueryRowContext(ctx, s.getQuery, id).Scan(&p.ID, &p.Title, &p.Content, &p.ModifiedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres get %s: %w", id, err)
	}
	return &p, nil
}

func (s *PostgresStore) Put(ctx context.Context, post models.Post) error {
	if _, err := s.db.ExecContext(ctx, s.upsertQuery, post.ID, post.Title, post.Content, post.ModifiedAt); err != nil {
		return fmt.Errorf("postgres put %s: %w", post.ID, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, s.deleteQuery, id); err != nil {
		return fmt.Errorf("postgres delete %s: %w", id, err)
	}
	return nil
}
