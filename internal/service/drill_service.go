package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/lexidrill/lexidrill-api/internal/domain"
	"github.com/lexidrill/lexidrill-api/internal/domain/progress"
	"github.com/lexidrill/lexidrill-api/internal/platform/logger"
	"github.com/lexidrill/lexidrill-api/internal/store"
)

// AttemptResult is the outcome of a drill attempt as seen by API callers:
// the per-answer grade plus the state the attempt left behind.
type AttemptResult struct {
	Result   progress.Result
	Advanced bool
	Category domain.Category
	Words    []domain.Word
}

// CategoryStatus reports a category's progress state together with the
// current lock state of both sub-modes.
type CategoryStatus struct {
	Category      domain.Category
	LockedForward bool
	LockedReverse bool
}

// DrillService coordinates drill attempts. A scored attempt runs inside a
// single database transaction with the category row locked, so concurrent
// submissions for the same category serialize and the daily lock cannot be
// raced past.
type DrillService struct {
	db            *sql.DB
	categoryStore store.CategoryStore
	wordStore     store.WordStore
	gradeStore    store.GradeRecordStore
	tracker       progress.Tracker
	params        *progress.Params
	logger        *slog.Logger
	now           func() time.Time
	runTx         func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// NewDrillService creates a new DrillService with the given dependencies.
// If params is nil, default progress parameters are used. If logger is nil,
// a default logger will be used.
func NewDrillService(
	db *sql.DB,
	categoryStore store.CategoryStore,
	wordStore store.WordStore,
	gradeStore store.GradeRecordStore,
	params *progress.Params,
	logger *slog.Logger,
) *DrillService {
	if db == nil {
		panic("db cannot be nil")
	}
	if categoryStore == nil || wordStore == nil || gradeStore == nil {
		panic("stores cannot be nil")
	}

	if params == nil {
		params = progress.NewDefaultParams()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &DrillService{
		db:            db,
		categoryStore: categoryStore,
		wordStore:     wordStore,
		gradeStore:    gradeStore,
		tracker:       progress.NewTrackerWithParams(params),
		params:        params,
		logger:        logger.With(slog.String("component", "drill_service")),
		now:           func() time.Time { return time.Now().UTC() },
		runTx:         store.RunInTransaction,
	}
}

// SubmitScoredAttempt grades a scored drill attempt for a category and
// persists all its consequences atomically: mastery points, level
// progression with the daily lock stamp, and the category's grade record.
//
// Returns progress.ErrSubModeLocked when the sub-mode was already completed
// today and store.ErrCategoryNotFound when the category does not exist.
func (s *DrillService) SubmitScoredAttempt(
	ctx context.Context,
	categoryName string,
	mode domain.SubMode,
	answers []string,
) (*AttemptResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	now := s.now()

	var result *AttemptResult
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		categories := s.categoryStore.WithTx(tx)
		words := s.wordStore.WithTx(tx)
		grades := s.gradeStore.WithTx(tx)

		// Lock the category row first. Everything after this point is
		// serialized per category until commit.
		category, err := categories.GetByNameForUpdate(ctx, categoryName)
		if err != nil {
			return err
		}

		wordPtrs, err := words.ListByCategory(ctx, categoryName)
		if err != nil {
			return err
		}
		if len(wordPtrs) == 0 {
			return ErrNoWords
		}
		drillWords := lo.Map(wordPtrs, func(w *domain.Word, _ int) domain.Word { return *w })

		outcome, err := s.tracker.SubmitScored(category, drillWords, answers, mode, now)
		if err != nil {
			return err
		}

		changed := changedWords(drillWords, outcome.UpdatedWords, now)
		if err := words.UpdatePoints(ctx, changed); err != nil {
			return err
		}

		if outcome.Advanced {
			if err := categories.Update(ctx, &outcome.UpdatedCategory); err != nil {
				return err
			}
		}

		if err := grades.Upsert(ctx, categoryName, mode, outcome.Result.Percent); err != nil {
			return err
		}

		result = &AttemptResult{
			Result:   outcome.Result,
			Advanced: outcome.Advanced,
			Category: outcome.UpdatedCategory,
			Words:    outcome.UpdatedWords,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("scored attempt submitted",
		slog.String("category", categoryName),
		slog.String("mode", string(mode)),
		slog.Int("percent", result.Result.Percent),
		slog.Bool("advanced", result.Advanced))
	return result, nil
}

// SubmitPracticeAttempt grades an ungraded practice run. Practice never
// touches the level, the daily lock, or the grade record; whether correct
// answers still earn mastery points is a policy knob.
func (s *DrillService) SubmitPracticeAttempt(
	ctx context.Context,
	categoryName string,
	mode domain.SubMode,
	answers []string,
) (*AttemptResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	now := s.now()

	category, err := s.categoryStore.GetByName(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	wordPtrs, err := s.wordStore.ListByCategory(ctx, categoryName)
	if err != nil {
		return nil, err
	}
	if len(wordPtrs) == 0 {
		return nil, ErrNoWords
	}
	drillWords := lo.Map(wordPtrs, func(w *domain.Word, _ int) domain.Word { return *w })

	result, err := progress.Grade(drillWords, answers, mode)
	if err != nil {
		return nil, err
	}

	updatedWords := drillWords
	if s.params.PracticeAwardsPoints {
		updatedWords = progress.ApplyResults(drillWords, result.Correctness)
		changed := changedWords(drillWords, updatedWords, now)

		err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
			return s.wordStore.WithTx(tx).UpdatePoints(ctx, changed)
		})
		if err != nil {
			return nil, err
		}
	}

	log.Debug("practice attempt graded",
		slog.String("category", categoryName),
		slog.String("mode", string(mode)),
		slog.Int("percent", result.Percent))
	return &AttemptResult{
		Result:   result,
		Advanced: false,
		Category: *category,
		Words:    updatedWords,
	}, nil
}

// Status reports a category's progress state and the lock state of both
// sub-modes at the current moment.
func (s *DrillService) Status(ctx context.Context, categoryName string) (*CategoryStatus, error) {
	category, err := s.categoryStore.GetByName(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return &CategoryStatus{
		Category:      *category,
		LockedForward: s.tracker.IsLocked(category, domain.SubModeForward, now),
		LockedReverse: s.tracker.IsLocked(category, domain.SubModeReverse, now),
	}, nil
}

// IsSubModeLocked reports whether a category's sub-mode is locked right now.
func (s *DrillService) IsSubModeLocked(ctx context.Context, categoryName string, mode domain.SubMode) (bool, error) {
	category, err := s.categoryStore.GetByName(ctx, categoryName)
	if err != nil {
		return false, err
	}
	return s.tracker.IsLocked(category, mode, s.now()), nil
}

// changedWords returns the words whose points differ from before, stamped
// with the attempt time, so the store only writes rows that changed.
func changedWords(before, after []domain.Word, now time.Time) []domain.Word {
	changed := make([]domain.Word, 0, len(after))
	for i := range after {
		if i < len(before) && after[i].Points == before[i].Points {
			continue
		}
		w := after[i]
		w.UpdatedAt = now
		changed = append(changed, w)
	}
	return changed
}
