package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/lexidrill/lexidrill-api/internal/domain"
	"github.com/lexidrill/lexidrill-api/internal/platform/logger"
	"github.com/lexidrill/lexidrill-api/internal/store"
)

// PostgresCategoryStore implements the store.CategoryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCategoryStore creates a new PostgreSQL implementation of the CategoryStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCategoryStore(db store.DBTX, logger *slog.Logger) *PostgresCategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

// Ensure PostgresCategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

const categoryColumns = `name, level, last_completed_forward, last_completed_reverse, created_at, updated_at`

func scanCategory(row interface{ Scan(dest ...any) error }) (*domain.Category, error) {
	var category domain.Category
	err := row.Scan(
		&category.Name,
		&category.Level,
		&category.LastCompletedForward,
		&category.LastCompletedReverse,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Create implements store.CategoryStore.Create
// It saves a new category to the database, handling domain validation.
// Returns store.ErrCategoryExists if a category with the same name exists.
func (s *PostgresCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during create",
			slog.String("error", err.Error()),
			slog.String("category", category.Name))
		return err
	}

	query := `
		INSERT INTO categories (name, level, last_completed_forward, last_completed_reverse, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		category.Name,
		category.Level,
		category.LastCompletedForward,
		category.LastCompletedReverse,
		category.CreatedAt,
		category.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate category name during create",
				slog.String("category", category.Name))
			return store.ErrCategoryExists
		}

		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("category", category.Name))
		return MapError(err)
	}

	log.Info("category created successfully",
		slog.String("category", category.Name))
	return nil
}

// GetByName implements store.CategoryStore.GetByName
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *PostgresCategoryStore) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	return s.getByName(ctx, name, false)
}

// GetByNameForUpdate implements store.CategoryStore.GetByNameForUpdate
// It locks the category row for the duration of the surrounding transaction,
// serializing concurrent drill submissions for the same category.
func (s *PostgresCategoryStore) GetByNameForUpdate(ctx context.Context, name string) (*domain.Category, error) {
	return s.getByName(ctx, name, true)
}

func (s *PostgresCategoryStore) getByName(ctx context.Context, name string, forUpdate bool) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving category by name",
		slog.String("category", name),
		slog.Bool("for_update", forUpdate))

	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE name = $1
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	category, err := scanCategory(s.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("category not found", slog.String("category", name))
			return nil, store.ErrCategoryNotFound
		}
		log.Error("failed to get category by name",
			slog.String("error", err.Error()),
			slog.String("category", name))
		return nil, MapError(err)
	}

	return category, nil
}

// List implements store.CategoryStore.List
// Returns an empty slice when the store holds no categories.
func (s *PostgresCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query categories",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	categories := []*domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			log.Error("failed to scan category row",
				slog.String("error", err.Error()))
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed categories", slog.Int("count", len(categories)))
	return categories, nil
}

// Update implements store.CategoryStore.Update
// It persists the category's level and completion timestamps.
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *PostgresCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during update",
			slog.String("error", err.Error()),
			slog.String("category", category.Name))
		return err
	}

	query := `
		UPDATE categories
		SET level = $1, last_completed_forward = $2, last_completed_reverse = $3, updated_at = $4
		WHERE name = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		category.Level,
		category.LastCompletedForward,
		category.LastCompletedReverse,
		category.UpdatedAt,
		category.Name,
	)
	if err != nil {
		log.Error("failed to update category",
			slog.String("error", err.Error()),
			slog.String("category", category.Name))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		log.Debug("category update matched no row",
			slog.String("category", category.Name),
			slog.String("error", err.Error()))
		return err
	}

	log.Info("category updated successfully",
		slog.String("category", category.Name),
		slog.Int("level", category.Level))
	return nil
}

// Rename implements store.CategoryStore.Rename
// Words and grade records follow the rename through ON UPDATE CASCADE on
// their foreign keys.
func (s *PostgresCategoryStore) Rename(ctx context.Context, oldName, newName string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	trimmed, err := domain.NewCategory(newName)
	if err != nil {
		log.Warn("invalid new category name during rename",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		UPDATE categories
		SET name = $1, updated_at = $2
		WHERE name = $3
	`

	result, err := s.db.ExecContext(ctx, query, trimmed.Name, time.Now().UTC(), oldName)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate category name during rename",
				slog.String("new_name", trimmed.Name))
			return store.ErrCategoryExists
		}
		log.Error("failed to rename category",
			slog.String("error", err.Error()),
			slog.String("old_name", oldName))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		log.Debug("category rename matched no row",
			slog.String("old_name", oldName),
			slog.String("error", err.Error()))
		return err
	}

	log.Info("category renamed successfully",
		slog.String("old_name", oldName),
		slog.String("new_name", trimmed.Name))
	return nil
}

// Delete implements store.CategoryStore.Delete
// Words and grade records are removed through ON DELETE CASCADE.
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *PostgresCategoryStore) Delete(ctx context.Context, name string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM categories
		WHERE name = $1
	`

	result, err := s.db.ExecContext(ctx, query, name)
	if err != nil {
		log.Error("failed to delete category",
			slog.String("error", err.Error()),
			slog.String("category", name))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		log.Debug("category delete matched no row",
			slog.String("category", name),
			slog.String("error", err.Error()))
		return err
	}

	log.Info("category deleted successfully",
		slog.String("category", name))
	return nil
}

// WithTx implements store.CategoryStore.WithTx
// It returns a new store instance bound to the given transaction.
func (s *PostgresCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return &PostgresCategoryStore{
		db:     tx,
		logger: s.logger,
	}
}
