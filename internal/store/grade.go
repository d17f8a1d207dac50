package store

import (
	"context"
	"database/sql"

	"github.com/lexidrill/lexidrill-api/internal/domain"
)

// GradeRecordStore defines the interface for grade record persistence.
// Each category has at most one record holding the latest percent per
// sub-mode; new attempts overwrite the matching column.
type GradeRecordStore interface {
	// Upsert stores the latest percent for one sub-mode of a category,
	// creating the record if needed and leaving the other sub-mode's
	// percent untouched.
	Upsert(ctx context.Context, category string, mode domain.SubMode, percent int) error

	// GetByCategory retrieves the grade record for a category.
	// Returns ErrGradeRecordNotFound if no attempt was ever recorded.
	GetByCategory(ctx context.Context, category string) (*domain.GradeRecord, error)

	// List retrieves all grade records ordered by category name.
	// Returns an empty slice when no attempts were ever recorded.
	List(ctx context.Context) ([]*domain.GradeRecord, error)

	// WithTx returns a new GradeRecordStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) GradeRecordStore
}
