// Package repository declares the persistence contracts. Implementations live
// in subpackages (postgres).
package repository

import (
	"context"

	"resumeapi/internal/model"
)

// ResumeRepository stores analysed résumés. It holds no business logic;
// FindByID returns sql.ErrNoRows for unknown ids.
type ResumeRepository interface {
	// Create inserts r and returns the stored row.
	Create(ctx context.Context, r *model.Resume) (*model.Resume, error)

	FindByID(ctx context.Context, id string) (*model.Resume, error)

	// List returns one page ordered newest first, plus the total row count
	// for the same filter.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Resume], error)

	// UpdateAnalysis replaces the analysis columns of an existing row.
	UpdateAnalysis(ctx context.Context, r *model.Resume) error

	// Delete removes a row. Missing rows are not an error.
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination and an optional status filter.
type PageQuery struct {
	Limit  int
	Offset int
	Status string
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
