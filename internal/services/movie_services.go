package services

import (
	"context"
	"fmt"
	"strings"

	"MovieVaultAPI/internal/model"
	"MovieVaultAPI/internal/pagination"
)

// MovieStore is the persistence surface MovieService needs.
// *repository.MovieRepository satisfies it.
type MovieStore interface {
	Create(ctx context.Context, m *model.Movie) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Movie, error)
	List(ctx context.Context, page pagination.Page) ([]model.Movie, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, m *model.Movie) error
	Delete(ctx context.Context, id int64) error
}

type MovieService struct {
	Repo MovieStore
}

func NewMovieService(r MovieStore) *MovieService {
	return &MovieService{Repo: r}
}

func validateMovie(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	return nil
}

func (s *MovieService) Create(ctx context.Context, title, genre, year string) (*model.Movie, error) {
	if err := validateMovie(title); err != nil {
		return nil, err
	}
	m := &model.Movie{Title: title, Genre: genre, Year: year}
	id, err := s.Repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	m.MovieID = id
	return m, nil
}

func (s *MovieService) Get(ctx context.Context, id int64) (*model.Movie, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns one page of movies plus the collection-wide total.
func (s *MovieService) List(ctx context.Context, page pagination.Page) ([]model.Movie, int, error) {
	list, err := s.Repo.List(ctx, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *MovieService) Update(ctx context.Context, id int64, title, genre, year string) error {
	if err := validateMovie(title); err != nil {
		return err
	}
	m := &model.Movie{MovieID: id, Title: title, Genre: genre, Year: year}
	return s.Repo.Update(ctx, m)
}

// Delete removes the movie and returns the deleted record.
func (s *MovieService) Delete(ctx context.Context, id int64) (*model.Movie, error) {
	m, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return m, nil
}
