package store

import (
	"context"
	"database/sql"

	"github.com/lexidrill/lexidrill-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// Create saves a new category to the store.
	// It handles domain validation internally.
	// Returns ErrCategoryExists if a category with the same name exists.
	Create(ctx context.Context, category *domain.Category) error

	// GetByName retrieves a category by its unique name.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByName(ctx context.Context, name string) (*domain.Category, error)

	// GetByNameForUpdate retrieves a category and locks its row for the
	// duration of the surrounding transaction. Concurrent attempts for the
	// same category serialize behind this lock, so the level can never
	// advance twice for one day's completion. Must be called on a store
	// bound to a transaction via WithTx.
	GetByNameForUpdate(ctx context.Context, name string) (*domain.Category, error)

	// List retrieves all categories, newest first.
	// Returns an empty slice when the store holds no categories.
	List(ctx context.Context) ([]*domain.Category, error)

	// Update saves changes to an existing category's progress state
	// (level and completion timestamps).
	// Returns ErrCategoryNotFound if the category does not exist.
	Update(ctx context.Context, category *domain.Category) error

	// Rename changes a category's name, carrying its words and grade
	// records along.
	// Returns ErrCategoryNotFound if the category does not exist and
	// ErrCategoryExists if the new name is already taken.
	Rename(ctx context.Context, oldName, newName string) error

	// Delete removes a category together with its words and grade records.
	// Returns ErrCategoryNotFound if the category does not exist.
	Delete(ctx context.Context, name string) error

	// WithTx returns a new CategoryStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) CategoryStore
}
