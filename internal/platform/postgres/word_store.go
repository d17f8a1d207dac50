package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lexidrill/lexidrill-api/internal/domain"
	"github.com/lexidrill/lexidrill-api/internal/platform/logger"
	"github.com/lexidrill/lexidrill-api/internal/store"
)

// PostgresWordStore implements the store.WordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWordStore creates a new PostgreSQL implementation of the WordStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresWordStore(db store.DBTX, logger *slog.Logger) *PostgresWordStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWordStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_store")),
	}
}

// Ensure PostgresWordStore implements store.WordStore interface
var _ store.WordStore = (*PostgresWordStore)(nil)

const wordColumns = `id, category, headword, translation, association, points, created_at, updated_at`

func scanWord(row interface{ Scan(dest ...any) error }) (*domain.Word, error) {
	var word domain.Word
	err := row.Scan(
		&word.ID,
		&word.Category,
		&word.Headword,
		&word.Translation,
		&word.Association,
		&word.Points,
		&word.CreatedAt,
		&word.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// Create implements store.WordStore.Create
// It saves a new word to the database, handling domain validation.
// Returns store.ErrWordExists when the category already has the headword and
// store.ErrCategoryNotFound when the category does not exist.
func (s *PostgresWordStore) Create(ctx context.Context, word *domain.Word) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := word.Validate(); err != nil {
		log.Warn("word validation failed during create",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return err
	}

	query := `
		INSERT INTO words (id, category, headword, translation, association, points, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		word.ID,
		word.Category,
		word.Headword,
		word.Translation,
		word.Association,
		word.Points,
		word.CreatedAt,
		word.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate headword during word creation",
				slog.String("category", word.Category),
				slog.String("headword", word.Headword))
			return store.ErrWordExists
		}
		if IsForeignKeyViolation(err) {
			log.Warn("unknown category during word creation",
				slog.String("category", word.Category))
			return store.ErrCategoryNotFound
		}

		log.Error("failed to create word",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()),
			slog.String("category", word.Category))
		return MapError(err)
	}

	log.Info("word created successfully",
		slog.String("word_id", word.ID.String()),
		slog.String("category", word.Category))
	return nil
}

// GetByID implements store.WordStore.GetByID
// Returns store.ErrWordNotFound if the word does not exist.
func (s *PostgresWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving word by ID", slog.String("word_id", id.String()))

	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE id = $1
	`

	word, err := scanWord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("word not found", slog.String("word_id", id.String()))
			return nil, store.ErrWordNotFound
		}
		log.Error("failed to get word by ID",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return nil, MapError(err)
	}

	return word, nil
}

// listWordsByCategoryQuery orders by creation time with the id as a
// tiebreaker. Attempts submit answers positionally against this listing,
// so the order must be identical on every read, even for words created in
// the same instant.
const listWordsByCategoryQuery = `
	SELECT ` + wordColumns + `
	FROM words
	WHERE category = $1
	ORDER BY created_at, id
`

// ListByCategory implements store.WordStore.ListByCategory
// Returns an empty slice when the category has no words.
func (s *PostgresWordStore) ListByCategory(ctx context.Context, category string) ([]*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, listWordsByCategoryQuery, category)
	if err != nil {
		log.Error("failed to query words by category",
			slog.String("error", err.Error()),
			slog.String("category", category))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	words := []*domain.Word{}
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			log.Error("failed to scan word row",
				slog.String("error", err.Error()))
			return nil, err
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed words by category",
		slog.String("category", category),
		slog.Int("count", len(words)))
	return words, nil
}

// Update implements store.WordStore.Update
// It persists the word's terms and association.
// Returns store.ErrWordNotFound if the word does not exist.
func (s *PostgresWordStore) Update(ctx context.Context, word *domain.Word) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := word.Validate(); err != nil {
		log.Warn("word validation failed during update",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return err
	}

	query := `
		UPDATE words
		SET headword = $1, translation = $2, association = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		word.Headword,
		word.Translation,
		word.Association,
		word.UpdatedAt,
		word.ID,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate headword during word update",
				slog.String("category", word.Category),
				slog.String("headword", word.Headword))
			return store.ErrWordExists
		}
		log.Error("failed to update word",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrWordNotFound); err != nil {
		log.Debug("word update matched no row",
			slog.String("word_id", word.ID.String()),
			slog.String("error", err.Error()))
		return err
	}

	log.Info("word updated successfully",
		slog.String("word_id", word.ID.String()))
	return nil
}

// UpdatePoints implements store.WordStore.UpdatePoints
// Only the points column is written. Missing rows are skipped silently: a
// word deleted mid-attempt simply loses its point.
func (s *PostgresWordStore) UpdatePoints(ctx context.Context, words []domain.Word) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(words) == 0 {
		return nil
	}

	query := `
		UPDATE words
		SET points = $1, updated_at = $2
		WHERE id = $3
	`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		log.Error("failed to prepare points update",
			slog.String("error", err.Error()))
		return store.NewStoreError("word", "update points", "failed to prepare statement", MapError(err))
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Error("failed to close statement", slog.String("error", err.Error()))
		}
	}()

	for _, word := range words {
		if _, err := stmt.ExecContext(ctx, word.Points, word.UpdatedAt, word.ID); err != nil {
			log.Error("failed to update word points",
				slog.String("error", err.Error()),
				slog.String("word_id", word.ID.String()))
			return store.NewStoreError("word", "update points", "failed to write points", MapError(err))
		}
	}

	log.Debug("word points updated", slog.Int("count", len(words)))
	return nil
}

// Delete implements store.WordStore.Delete
// Returns store.ErrWordNotFound if the word does not exist.
func (s *PostgresWordStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM words
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete word",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrWordNotFound); err != nil {
		log.Debug("word delete matched no row",
			slog.String("word_id", id.String()),
			slog.String("error", err.Error()))
		return err
	}

	log.Info("word deleted successfully",
		slog.String("word_id", id.String()))
	return nil
}

// WithTx implements store.WordStore.WithTx
// It returns a new store instance bound to the given transaction.
func (s *PostgresWordStore) WithTx(tx *sql.Tx) store.WordStore {
	return &PostgresWordStore{
		db:     tx,
		logger: s.logger,
	}
}
