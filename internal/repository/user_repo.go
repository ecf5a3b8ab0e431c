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

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

// Create inserts a new user and returns the assigned id.
func (r *UserRepository) Create(ctx context.Context, u *model.User) (int64, error) {
	var id int64
	query := `INSERT INTO users (email, gender, passwordhash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5) RETURNING userid`
	if err := r.DB.QueryRow(ctx, query, u.Email, u.Gender, u.PasswordHash, u.Role, time.Now()).Scan(&id); err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// GetByEmail returns the user including the password hash, for login.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	query := `SELECT userid, email, gender, passwordhash, role, created_at, updated_at
		FROM users WHERE email=$1`
	err := r.DB.QueryRow(ctx, query, email).
		Scan(&u.UserID, &u.Email, &u.Gender, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	query := `SELECT userid, email, gender, passwordhash, role, created_at, updated_at
		FROM users WHERE userid=$1`
	err := r.DB.QueryRow(ctx, query, id).
		Scan(&u.UserID, &u.Email, &u.Gender, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("email exists: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) List(ctx context.Context, page pagination.Page) ([]model.User, error) {
	query := `SELECT userid, email, gender, passwordhash, role, created_at, updated_at
		FROM users ORDER BY userid LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(ctx, query, page.LimitArg(), page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	list := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserID, &u.Email, &u.Gender, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *UserRepository) Update(ctx context.Context, u *model.User) error {
	query := `UPDATE users SET email=$1, gender=$2, role=$3, updated_at=$4 WHERE userid=$5`
	tag, err := r.DB.Exec(ctx, query, u.Email, u.Gender, u.Role, time.Now(), u.UserID)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM users WHERE userid=$1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
