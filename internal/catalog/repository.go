package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines the interface for catalog reads.
type Repository interface {
	All(ctx context.Context) ([]*Project, error)
	Featured(ctx context.Context) ([]*Project, error)
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository reads projects from the relational database.
type PostgresRepository struct {
	pool querier
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("catalog: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

func newPostgresRepositoryWithQuerier(q querier) *PostgresRepository {
	if q == nil {
		panic("catalog: querier required")
	}
	return &PostgresRepository{pool: q}
}

const projectColumns = `id, slug, title_uk, title_pl, title_en, description_uk, description_pl, description_en, price_start, image_url, is_featured`

// All returns every project.
func (r *PostgresRepository) All(ctx context.Context) ([]*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`
	return r.query(ctx, query)
}

// Featured returns projects marked for the landing page.
func (r *PostgresRepository) Featured(ctx context.Context) ([]*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE is_featured ORDER BY created_at DESC`
	return r.query(ctx, query)
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*Project, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: query projects: %w", err)
	}
	defer rows.Close()

	var out []*Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(
			&p.ID,
			&p.Slug,
			&p.TitleUK,
			&p.TitlePL,
			&p.TitleEN,
			&p.DescriptionUK,
			&p.DescriptionPL,
			&p.DescriptionEN,
			&p.PriceStart,
			&p.ImageURL,
			&p.IsFeatured,
		); err != nil {
			return nil, fmt.Errorf("catalog: scan project: %w", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: rows failed: %w", err)
	}
	return out, nil
}
