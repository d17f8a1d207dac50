package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lexidrill/lexidrill-api/internal/api"
	apiMiddleware "github.com/lexidrill/lexidrill-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	categoryHandler := api.NewCategoryHandler(app.categoryStore, app.drillService, app.logger)
	wordHandler := api.NewWordHandler(app.wordStore, app.logger)
	drillHandler := api.NewDrillHandler(app.drillService, app.logger)
	gradeHandler := api.NewGradeHandler(app.gradeStore, app.logger)
	suggestionHandler := api.NewSuggestionHandler(app.generator, app.wordStore, app.logger)
	speechHandler := api.NewSpeechHandler(app.synthesizer, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.ListCategories)
			r.Post("/", categoryHandler.CreateCategory)

			r.Route("/{category}", func(r chi.Router) {
				r.Get("/", categoryHandler.GetCategory)
				r.Put("/", categoryHandler.RenameCategory)
				r.Delete("/", categoryHandler.DeleteCategory)

				r.Get("/words", wordHandler.ListWords)
				r.Post("/words", wordHandler.CreateWord)

				r.Post("/attempts", drillHandler.SubmitAttempt)
				r.Get("/grade", gradeHandler.GetGrade)

				r.Get("/suggestions", suggestionHandler.SuggestWords)
				r.Post("/suggest-headword", suggestionHandler.SuggestHeadword)
			})
		})

		r.Put("/words/{id}", wordHandler.UpdateWord)
		r.Delete("/words/{id}", wordHandler.DeleteWord)

		r.Get("/grades", gradeHandler.ListGrades)
		r.Post("/tts", speechHandler.Synthesize)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
