package services

import (
	"context"
	"testing"
	"time"

	"MovieVaultAPI/internal/auth"
	"MovieVaultAPI/internal/model"
	"MovieVaultAPI/internal/pagination"
	"MovieVaultAPI/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memUserStore is an in-memory UserStore for service tests.
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
	if page.Offset >= len(all) {
		return []model.User{}, nil
	}
	all = all[page.Offset:]
	if page.Limit != pagination.All && page.Limit < len(all) {
		all = all[:page.Limit]
	}
	return all, nil
}

func (s *memUserStore) Count(_ context.Context) (int, error) {
	return len(s.users), nil
}

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

func newAuthService(store UserStore) *AuthService {
	hasher := auth.NewHasher(bcrypt.MinCost)
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	return NewAuthService(store, hasher, tokens)
}

func TestAuthService_Register(t *testing.T) {
	store := newMemUserStore()
	svc := newAuthService(store)

	u, err := svc.Register(context.Background(), "a@b.com", "Male", "secret", "user")
	require.NoError(t, err)

	assert.Equal(t, int64(1), u.UserID)
	assert.Equal(t, "a@b.com", u.Email)
	assert.NotEqual(t, "secret", u.PasswordHash)
	assert.True(t, svc.Hasher.Verify("secret", u.PasswordHash))

	stored, err := store.GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.NotContains(t, stored.PasswordHash, "secret")
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newMemUserStore())

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "empty email", email: "", password: "secret"},
		{name: "bad email", email: "not-an-email", password: "secret"},
		{name: "short password", email: "a@b.com", password: "pw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.email, "", tt.password, "user")
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newAuthService(newMemUserStore())

	_, err := svc.Register(context.Background(), "a@b.com", "Male", "secret", "user")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "a@b.com", "Female", "secret2", "admin")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	svc := newAuthService(newMemUserStore())

	u, err := svc.Register(context.Background(), "a@b.com", "Male", "secret", "admin")
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.UserID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(newMemUserStore())

	_, err := svc.Register(context.Background(), "a@b.com", "Male", "secret", "user")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "a@b.com", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newMemUserStore())

	_, err := svc.Login(context.Background(), "nobody@b.com", "secret")
	// Unknown email and bad password must be indistinguishable.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
