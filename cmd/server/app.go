package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/lexidrill/lexidrill-api/internal/config"
	"github.com/lexidrill/lexidrill-api/internal/domain/progress"
	"github.com/lexidrill/lexidrill-api/internal/generation"
	"github.com/lexidrill/lexidrill-api/internal/platform/gcptts"
	"github.com/lexidrill/lexidrill-api/internal/platform/gemini"
	"github.com/lexidrill/lexidrill-api/internal/platform/postgres"
	"github.com/lexidrill/lexidrill-api/internal/service"
	"github.com/lexidrill/lexidrill-api/internal/speech"
	"github.com/lexidrill/lexidrill-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	categoryStore store.CategoryStore
	wordStore     store.WordStore
	gradeStore    store.GradeRecordStore

	// Services
	drillService *service.DrillService

	// Optional integrations; nil when not configured
	generator   generation.Generator
	synthesizer speech.Synthesizer
}

// newApplication creates a new application instance with all dependencies
// initialized. The LLM generator and the speech synthesizer are optional:
// when not configured their endpoints answer 503 instead of the server
// refusing to start.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.categoryStore = postgres.NewPostgresCategoryStore(db, logger)
	app.wordStore = postgres.NewPostgresWordStore(db, logger)
	app.gradeStore = postgres.NewPostgresGradeRecordStore(db, logger)

	location, err := time.LoadLocation(cfg.Progress.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid progress time zone %q: %w", cfg.Progress.TimeZone, err)
	}
	params := &progress.Params{
		Location:             location,
		PracticeAwardsPoints: cfg.Progress.PracticeAwardsPoints,
	}

	app.drillService = service.NewDrillService(
		db,
		app.categoryStore,
		app.wordStore,
		app.gradeStore,
		params,
		logger,
	)
	logger.Info("Drill service initialized",
		"time_zone", cfg.Progress.TimeZone,
		"practice_awards_points", cfg.Progress.PracticeAwardsPoints)

	if cfg.LLM.GeminiAPIKey != "" {
		generator, err := gemini.NewGeminiGenerator(
			ctx,
			logger.With(slog.String("component", "llm_generator")),
			cfg.LLM,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
		}
		app.generator = generator
		logger.Info("LLM suggestion generator initialized", "model", cfg.LLM.ModelName)
	} else {
		logger.Info("No Gemini API key configured, suggestion endpoints disabled")
	}

	if cfg.Speech.Enabled {
		synthesizer, err := gcptts.NewSynthesizer(ctx, logger, cfg.Speech)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize speech synthesizer: %w", err)
		}
		app.synthesizer = synthesizer
		logger.Info("Text-to-speech synthesizer initialized",
			"language_code", cfg.Speech.LanguageCode)
	} else {
		logger.Info("Text-to-speech disabled")
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.synthesizer != nil {
		if err := app.synthesizer.Close(); err != nil {
			app.logger.Error("Error closing speech synthesizer", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
