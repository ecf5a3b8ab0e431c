// Package pagination implements the offset/limit listing contract
// shared by every collection endpoint.
package pagination

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidOffset = errors.New("offset must be a non-negative integer")
	ErrInvalidLimit  = errors.New("limit must be a positive integer")
)

// All means no upper bound on the page size.
const All = -1

// Page is a validated listing window. A missing offset starts at the
// beginning of the collection; a missing limit returns everything
// remaining.
type Page struct {
	Offset int
	Limit  int
}

// Parse validates raw query values into a Page. Non-numeric or
// negative values fail closed so the query never runs.
func Parse(offsetParam, limitParam string) (Page, error) {
	p := Page{Offset: 0, Limit: All}

	if offsetParam != "" {
		n, err := strconv.Atoi(offsetParam)
		if err != nil || n < 0 {
			return Page{}, ErrInvalidOffset
		}
		p.Offset = n
	}

	if limitParam != "" {
		n, err := strconv.Atoi(limitParam)
		if err != nil || n <= 0 {
			return Page{}, ErrInvalidLimit
		}
		p.Limit = n
	}

	return p, nil
}

// LimitArg returns the limit as an SQL LIMIT argument, nil when
// unbounded (Postgres treats LIMIT NULL as no limit).
func (p Page) LimitArg() any {
	if p.Limit == All {
		return nil
	}
	return p.Limit
}

// Meta describes the page actually served: the offset applied, the
// size of the whole collection, and the records returned.
type Meta struct {
	Page  int `json:"page"`
	Count int `json:"count"`
	Size  int `json:"size"`
}

func NewMeta(p Page, total, returned int) Meta {
	return Meta{Page: p.Offset, Count: total, Size: returned}
}
