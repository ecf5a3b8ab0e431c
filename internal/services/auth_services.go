package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"MovieVaultAPI/internal/auth"
	"MovieVaultAPI/internal/model"
	"MovieVaultAPI/internal/pagination"
	"MovieVaultAPI/internal/repository"
)

const MinPasswordLen = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// UserStore is the persistence surface the user-facing services need.
// *repository.UserRepository satisfies it.
type UserStore interface {
	Create(ctx context.Context, u *model.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, page pagination.Page) ([]model.User, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
}

type AuthService struct {
	Users  UserStore
	Hasher *auth.Hasher
	Tokens *auth.TokenManager
}

func NewAuthService(users UserStore, hasher *auth.Hasher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{Users: users, Hasher: hasher, Tokens: tokens}
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	return nil
}

func validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLen)
	}
	return nil
}

// Register hashes the password and creates the user. The plaintext is
// never stored or logged; the returned user carries only the hash,
// which the model keeps out of JSON.
func (s *AuthService) Register(ctx context.Context, email, gender, password, role string) (*model.User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	exists, err := s.Users.EmailExists(ctx, email)
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
	u := &model.User{
		Email:        email,
		Gender:       gender,
		PasswordHash: hash,
		Role:         role,
	}
	id, err := s.Users.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	u.UserID = id
	return u, nil
}

// Login checks the credentials and mints a bearer token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", auth.ErrInvalidCredentials
		}
		return "", err
	}
	if !s.Hasher.Verify(password, u.PasswordHash) {
		return "", auth.ErrInvalidCredentials
	}
	return s.Tokens.Issue(u.UserID, u.Email, u.Role)
}
