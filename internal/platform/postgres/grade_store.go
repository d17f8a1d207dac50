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

// PostgresGradeRecordStore implements the store.GradeRecordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresGradeRecordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresGradeRecordStore creates a new PostgreSQL implementation of the GradeRecordStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresGradeRecordStore(db store.DBTX, logger *slog.Logger) *PostgresGradeRecordStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresGradeRecordStore{
		db:     db,
		logger: logger.With(slog.String("component", "grade_store")),
	}
}

// Ensure PostgresGradeRecordStore implements store.GradeRecordStore interface
var _ store.GradeRecordStore = (*PostgresGradeRecordStore)(nil)

// Upsert implements store.GradeRecordStore.Upsert
// One ON CONFLICT statement per sub-mode keeps the other percent column
// untouched while always overwriting the matching one.
func (s *PostgresGradeRecordStore) Upsert(
	ctx context.Context,
	category string,
	mode domain.SubMode,
	percent int,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !mode.Valid() {
		return domain.ErrInvalidSubMode
	}

	var query string
	switch mode {
	case domain.SubModeForward:
		query = `
			INSERT INTO grade_records (category, forward_percent, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (category)
			DO UPDATE SET forward_percent = EXCLUDED.forward_percent, updated_at = EXCLUDED.updated_at
		`
	case domain.SubModeReverse:
		query = `
			INSERT INTO grade_records (category, reverse_percent, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (category)
			DO UPDATE SET reverse_percent = EXCLUDED.reverse_percent, updated_at = EXCLUDED.updated_at
		`
	}

	_, err := s.db.ExecContext(ctx, query, category, percent, time.Now().UTC())
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("unknown category during grade upsert",
				slog.String("category", category))
			return store.ErrCategoryNotFound
		}
		log.Error("failed to upsert grade record",
			slog.String("error", err.Error()),
			slog.String("category", category),
			slog.String("mode", string(mode)))
		return store.NewStoreError("grade record", "upsert", "failed to write percent", MapError(err))
	}

	log.Debug("grade record upserted",
		slog.String("category", category),
		slog.String("mode", string(mode)),
		slog.Int("percent", percent))
	return nil
}

// GetByCategory implements store.GradeRecordStore.GetByCategory
// Returns store.ErrGradeRecordNotFound if no attempt was ever recorded.
func (s *PostgresGradeRecordStore) GetByCategory(ctx context.Context, category string) (*domain.GradeRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT category, forward_percent, reverse_percent, updated_at
		FROM grade_records
		WHERE category = $1
	`

	var record domain.GradeRecord
	err := s.db.QueryRowContext(ctx, query, category).Scan(
		&record.Category,
		&record.ForwardPercent,
		&record.ReversePercent,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("grade record not found", slog.String("category", category))
			return nil, store.ErrGradeRecordNotFound
		}
		log.Error("failed to get grade record",
			slog.String("error", err.Error()),
			slog.String("category", category))
		return nil, MapError(err)
	}

	return &record, nil
}

// List implements store.GradeRecordStore.List
// Returns an empty slice when no attempts were ever recorded.
func (s *PostgresGradeRecordStore) List(ctx context.Context) ([]*domain.GradeRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT category, forward_percent, reverse_percent, updated_at
		FROM grade_records
		ORDER BY category
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query grade records",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	records := []*domain.GradeRecord{}
	for rows.Next() {
		var record domain.GradeRecord
		err := rows.Scan(
			&record.Category,
			&record.ForwardPercent,
			&record.ReversePercent,
			&record.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan grade record row",
				slog.String("error", err.Error()))
			return nil, err
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed grade records", slog.Int("count", len(records)))
	return records, nil
}

// WithTx implements store.GradeRecordStore.WithTx
// It returns a new store instance bound to the given transaction.
func (s *PostgresGradeRecordStore) WithTx(tx *sql.Tx) store.GradeRecordStore {
	return &PostgresGradeRecordStore{
		db:     tx,
		logger: s.logger,
	}
}
