package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexidrill/lexidrill-api/internal/domain"
	"github.com/lexidrill/lexidrill-api/internal/service"
	"github.com/lexidrill/lexidrill-api/internal/store"
)

// fakeCategoryStore is an in-memory CategoryStore for handler tests.
type fakeCategoryStore struct {
	categories map[string]*domain.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[string]*domain.Category)}
}

func (s *fakeCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if _, ok := s.categories[category.Name]; ok {
		return fmt.Errorf("%w: %s", store.ErrCategoryExists, category.Name)
	}
	copied := *category
	s.categories[category.Name] = &copied
	return nil
}

func (s *fakeCategoryStore) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	category, ok := s.categories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrCategoryNotFound, name)
	}
	copied := *category
	return &copied, nil
}

func (s *fakeCategoryStore) GetByNameForUpdate(ctx context.Context, name string) (*domain.Category, error) {
	return s.GetByName(ctx, name)
}

func (s *fakeCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	result := make([]*domain.Category, 0, len(s.categories))
	for _, category := range s.categories {
		copied := *category
		result = append(result, &copied)
	}
	return result, nil
}

func (s *fakeCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if _, ok := s.categories[category.Name]; !ok {
		return fmt.Errorf("%w: %s", store.ErrCategoryNotFound, category.Name)
	}
	copied := *category
	s.categories[category.Name] = &copied
	return nil
}

func (s *fakeCategoryStore) Rename(ctx context.Context, oldName, newName string) error {
	category, ok := s.categories[oldName]
	if !ok {
		return fmt.Errorf("%w: %s", store.ErrCategoryNotFound, oldName)
	}
	if _, ok := s.categories[newName]; ok {
		return fmt.Errorf("%w: %s", store.ErrCategoryExists, newName)
	}
	delete(s.categories, oldName)
	category.Name = newName
	s.categories[newName] = category
	return nil
}

func (s *fakeCategoryStore) Delete(ctx context.Context, name string) error {
	if _, ok := s.categories[name]; !ok {
		return fmt.Errorf("%w: %s", store.ErrCategoryNotFound, name)
	}
	delete(s.categories, name)
	return nil
}

func (s *fakeCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore { return s }

func categoryRouter(categoryStore store.CategoryStore, drill DrillService) *chi.Mux {
	handler := NewCategoryHandler(categoryStore, drill, testLogger())
	router := chi.NewRouter()
	router.Get("/api/categories", handler.ListCategories)
	router.Post("/api/categories", handler.CreateCategory)
	router.Get("/api/categories/{category}", handler.GetCategory)
	router.Put("/api/categories/{category}", handler.RenameCategory)
	router.Delete("/api/categories/{category}", handler.DeleteCategory)
	return router
}

func seedCategory(t *testing.T, s *fakeCategoryStore, name string) *domain.Category {
	t.Helper()

	category, err := domain.NewCategory(name)
	require.NoError(t, err)
	require.NoError(t, s.Create(context.Background(), category))
	return category
}

func TestCreateCategory(t *testing.T) {
	t.Parallel()

	categoryStore := newFakeCategoryStore()
	router := categoryRouter(categoryStore, &fakeDrillService{})

	recorder := postJSON(t, router, "/api/categories", `{"name":"animals"}`)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var response CategoryResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "animals", response.Name)
	assert.Equal(t, 0, response.Level)

	_, err := categoryStore.GetByName(context.Background(), "animals")
	assert.NoError(t, err)
}

func TestCreateCategoryDuplicate(t *testing.T) {
	t.Parallel()

	categoryStore := newFakeCategoryStore()
	seedCategory(t, categoryStore, "animals")
	router := categoryRouter(categoryStore, &fakeDrillService{})

	recorder := postJSON(t, router, "/api/categories", `{"name":"animals"}`)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestCreateCategoryValidation(t *testing.T) {
	t.Parallel()

	categoryStore := newFakeCategoryStore()
	router := categoryRouter(categoryStore, &fakeDrillService{})

	for _, body := range []string{`{}`, `{"name":""}`, `not json`} {
		recorder := postJSON(t, router, "/api/categories", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "body: %s", body)
	}
}

func TestListCategories(t *testing.T) {
	t.Parallel()

	categoryStore := newFakeCategoryStore()
	seedCategory(t, categoryStore, "animals")
	seedCategory(t, categoryStore, "verbs")
	router := categoryRouter(categoryStore, &fakeDrillService{})

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response []CategoryResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Len(t, response, 2)
}

func TestGetCategoryStatus(t *testing.T) {
	t.Parallel()

	categoryStore := newFakeCategoryStore()
	category := seedCategory(t, categoryStore, "animals")

	drill := &fakeDrillService{status: &service.CategoryStatus{
		Category:      *category,
		LockedForward: true,
		LockedReverse: false,
	}}
	router := categoryRouter(categoryStore, drill)

	req := httptest.NewRequest(http.MethodGet, "/api/categories/animals", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response CategoryStatusResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "animals", response.Name)
	assert.True(t, response.LockedForward)
	assert.False(t, response.LockedReverse)
}

func TestRenameCategory(t *testing.T) {
	t.Parallel()

	categoryStore := newFakeCategoryStore()
	seedCategory(t, categoryStore, "animals")
	router := categoryRouter(categoryStore, &fakeDrillService{})

	req := httptest.NewRequest(http.MethodPut, "/api/categories/animals",
		jsonBody(`{"name":"fauna"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response CategoryResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "fauna", response.Name)

	_, err := categoryStore.GetByName(context.Background(), "animals")
	assert.ErrorIs(t, err, store.ErrCategoryNotFound)
}

func TestDeleteCategory(t *testing.T) {
	t.Parallel()

	categoryStore := newFakeCategoryStore()
	seedCategory(t, categoryStore, "animals")
	router := categoryRouter(categoryStore, &fakeDrillService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/animals", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusNoContent, recorder.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/categories/animals", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
