package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"MovieVaultAPI/internal/model"
	"MovieVaultAPI/internal/pagination"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MovieRepository struct {
	DB *pgxpool.Pool
}

func NewMovieRepository(db *pgxpool.Pool) *MovieRepository {
	return &MovieRepository{DB: db}
}

func (r *MovieRepository) Create(ctx context.Context, m *model.Movie) (int64, error) {
	var id int64
	query := `INSERT INTO movies (title, genre, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4) RETURNING movieid`
	if err := r.DB.QueryRow(ctx, query, m.Title, m.Genre, m.Year, time.Now()).Scan(&id); err != nil {
		return 0, fmt.Errorf("create movie: %w", err)
	}
	return id, nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	var m model.Movie
	query := `SELECT movieid, title, genre, year, created_at, updated_at FROM movies WHERE movieid=$1`
	err := r.DB.QueryRow(ctx, query, id).
		Scan(&m.MovieID, &m.Title, &m.Genre, &m.Year, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get movie: %w", err)
	}
	return &m, nil
}

func (r *MovieRepository) List(ctx context.Context, page pagination.Page) ([]model.Movie, error) {
	query := `SELECT movieid, title, genre, year, created_at, updated_at
		FROM movies ORDER BY movieid LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(ctx, query, page.LimitArg(), page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	list := []model.Movie{}
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.MovieID, &m.Title, &m.Genre, &m.Year, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *MovieRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return n, nil
}

func (r *MovieRepository) Update(ctx context.Context, m *model.Movie) error {
	query := `UPDATE movies SET title=$1, genre=$2, year=$3, updated_at=$4 WHERE movieid=$5`
	tag, err := r.DB.Exec(ctx, query, m.Title, m.Genre, m.Year, time.Now(), m.MovieID)
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM movies WHERE movieid=$1`, id)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
