package main

import (
	"context"
	"time"

	"MovieVaultAPI/internal/auth"
	"MovieVaultAPI/internal/model"
	"MovieVaultAPI/internal/pagination"
	"MovieVaultAPI/internal/repository"
	"MovieVaultAPI/internal/services"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// In-memory stores standing in for the pgx repositories so handler
// tests run the full echo pipeline without a database.

type memUserStore struct {
	users  map[int64]*model.User
	nextID int64
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[int64]*model.User{}, nextID: 1}
}

func (s *memUserStore) Create(_ context.Context, u *model.User) (int64, error) {
	id := s.nextID
	s.nextID++
	cp := *u
	cp.UserID = id
	s.users[id] = &cp
	return id, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, err := s.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (s *memUserStore) List(_ context.Context, page pagination.Page) ([]model.User, error) {
	all := make([]model.User, 0, len(s.users))
	for id := int64(1); id < s.nextID; id++ {
		if u, ok := s.users[id]; ok {
			all = append(all, *u)
		}
	}
	return paginate(all, page), nil
}

func (s *memUserStore) Count(_ context.Context) (int, error) { return len(s.users), nil }

func (s *memUserStore) Update(_ context.Context, u *model.User) error {
	existing, ok := s.users[u.UserID]
	if !ok {
		return repository.ErrNotFound
	}
	existing.Email = u.Email
	existing.Gender = u.Gender
	existing.Role = u.Role
	return nil
}

func (s *memUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

type memMovieStore struct {
	movies map[int64]*model.Movie
	nextID int64
}

func newMemMovieStore() *memMovieStore {
	return &memMovieStore{movies: map[int64]*model.Movie{}, nextID: 1}
}

func (s *memMovieStore) Create(_ context.Context, m *model.Movie) (int64, error) {
	id := s.nextID
	s.nextID++
	cp := *m
	cp.MovieID = id
	s.movies[id] = &cp
	return id, nil
}

func (s *memMovieStore) GetByID(_ context.Context, id int64) (*model.Movie, error) {
	m, ok := s.movies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (s *memMovieStore) List(_ context.Context, page pagination.Page) ([]model.Movie, error) {
	all := make([]model.Movie, 0, len(s.movies))
	for id := int64(1); id < s.nextID; id++ {
		if m, ok := s.movies[id]; ok {
			all = append(all, *m)
		}
	}
	return paginate(all, page), nil
}

func (s *memMovieStore) Count(_ context.Context) (int, error) { return len(s.movies), nil }

func (s *memMovieStore) Update(_ context.Context, m *model.Movie) error {
	existing, ok := s.movies[m.MovieID]
	if !ok {
		return repository.ErrNotFound
	}
	existing.Title = m.Title
	existing.Genre = m.Genre
	existing.Year = m.Year
	return nil
}

func (s *memMovieStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.movies[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.movies, id)
	return nil
}

func paginate[T any](all []T, page pagination.Page) []T {
	if page.Offset >= len(all) {
		return []T{}
	}
	all = all[page.Offset:]
	if page.Limit != pagination.All && page.Limit < len(all) {
		all = all[:page.Limit]
	}
	return all
}

type testServer struct {
	e      *echo.Echo
	tokens *auth.TokenManager
	users  *memUserStore
	movies *memMovieStore
}

func newTestServer() *testServer {
	users := newMemUserStore()
	movies := newMemMovieStore()

	hasher := auth.NewHasher(bcrypt.MinCost)
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)

	e := echo.New()
	api := e.Group("")
	registerAuthRoutes(api, services.NewAuthService(users, hasher, tokens))
	registerUserRoutes(api, services.NewUserService(users, hasher), tokens)
	registerMovieRoutes(api, services.NewMovieService(movies), tokens)

	return &testServer{e: e, tokens: tokens, users: users, movies: movies}
}
