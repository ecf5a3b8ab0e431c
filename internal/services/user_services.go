package services

import (
	"context"

	"MovieVaultAPI/internal/auth"
	"MovieVaultAPI/internal/model"
	"MovieVaultAPI/internal/pagination"
)

type UserService struct {
	Repo   UserStore
	Hasher *auth.Hasher
}

func NewUserService(r UserStore, hasher *auth.Hasher) *UserService {
	return &UserService{Repo: r, Hasher: hasher}
}

// Create is the admin-facing CRUD create. It runs the same checks as
// registration so a CRUD insert can never store a plaintext password.
func (s *UserService) Create(ctx context.Context, email, gender, password, role string) (*model.User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	exists, err := s.Repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	u := &model.User{Email: email, Gender: gender, PasswordHash: hash, Role: role}
	id, err := s.Repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	u.UserID = id
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns one page of users plus the collection-wide total.
func (s *UserService) List(ctx context.Context, page pagination.Page) ([]model.User, int, error) {
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

func (s *UserService) Update(ctx context.Context, id int64, email, gender, role string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	u := &model.User{UserID: id, Email: email, Gender: gender, Role: role}
	return s.Repo.Update(ctx, u)
}

// Delete removes the user and returns the deleted record.
func (s *UserService) Delete(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return u, nil
}
