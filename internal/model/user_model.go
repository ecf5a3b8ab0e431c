package model

import "time"

type User struct {
	UserID       int64      `json:"id"`
	Email        string     `json:"email"`
	Gender       string     `json:"gender"`
	PasswordHash string     `json:"-"` // never JSON-encode
	Role         string     `json:"role"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
