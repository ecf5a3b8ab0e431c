package model

import "time"

type Movie struct {
	MovieID   int64      `json:"id"`
	Title     string     `json:"title"`
	Genre     string     `json:"genre"`
	Year      string     `json:"year"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
