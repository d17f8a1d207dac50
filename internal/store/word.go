package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lexidrill/lexidrill-api/internal/domain"
)

// WordStore defines the interface for word data persistence.
type WordStore interface {
	// Create saves a new word to the store.
	// It handles domain validation internally.
	// Returns ErrWordExists when the category already has the headword and
	// ErrCategoryNotFound when the category does not exist.
	Create(ctx context.Context, word *domain.Word) error

	// GetByID retrieves a word by its unique ID.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)

	// ListByCategory retrieves all words in a category ordered by creation
	// time. Returns an empty slice when the category has no words.
	ListByCategory(ctx context.Context, category string) ([]*domain.Word, error)

	// Update saves changes to an existing word's terms and association.
	// Returns ErrWordNotFound if the word does not exist.
	Update(ctx context.Context, word *domain.Word) error

	// UpdatePoints persists the mastery points of the given words. Only the
	// points column is written; callers pass the updated word values from a
	// graded attempt.
	UpdatePoints(ctx context.Context, words []domain.Word) error

	// Delete removes a word from the store.
	// Returns ErrWordNotFound if the word does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new WordStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) WordStore
}
