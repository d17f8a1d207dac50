package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexidrill/lexidrill-api/internal/domain"
	"github.com/lexidrill/lexidrill-api/internal/store"
)

// fakeGradeStore is an in-memory GradeRecordStore for handler tests.
type fakeGradeStore struct {
	records map[string]*domain.GradeRecord
}

func newFakeGradeStore() *fakeGradeStore {
	return &fakeGradeStore{records: make(map[string]*domain.GradeRecord)}
}

func (s *fakeGradeStore) Upsert(ctx context.Context, category string, mode domain.SubMode, percent int) error {
	record, ok := s.records[category]
	if !ok {
		record = &domain.GradeRecord{Category: category}
		s.records[category] = record
	}
	value := percent
	if mode == domain.SubModeReverse {
		record.ReversePercent = &value
	} else {
		record.ForwardPercent = &value
	}
	record.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *fakeGradeStore) GetByCategory(ctx context.Context, category string) (*domain.GradeRecord, error) {
	record, ok := s.records[category]
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrGradeRecordNotFound, category)
	}
	copied := *record
	return &copied, nil
}

func (s *fakeGradeStore) List(ctx context.Context) ([]*domain.GradeRecord, error) {
	result := make([]*domain.GradeRecord, 0, len(s.records))
	for _, record := range s.records {
		copied := *record
		result = append(result, &copied)
	}
	return result, nil
}

func (s *fakeGradeStore) WithTx(tx *sql.Tx) store.GradeRecordStore { return s }

func gradeRouter(gradeStore store.GradeRecordStore) *chi.Mux {
	handler := NewGradeHandler(gradeStore, testLogger())
	router := chi.NewRouter()
	router.Get("/api/grades", handler.ListGrades)
	router.Get("/api/categories/{category}/grade", handler.GetGrade)
	return router
}

func TestGetGrade(t *testing.T) {
	t.Parallel()

	gradeStore := newFakeGradeStore()
	require.NoError(t, gradeStore.Upsert(context.Background(), "animals", domain.SubModeForward, 67))
	router := gradeRouter(gradeStore)

	req := httptest.NewRequest(http.MethodGet, "/api/categories/animals/grade", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response GradeRecordResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "animals", response.Category)
	require.NotNil(t, response.ForwardPercent)
	assert.Equal(t, 67, *response.ForwardPercent)
	assert.Nil(t, response.ReversePercent)
}

func TestGetGradeNotRecorded(t *testing.T) {
	t.Parallel()

	router := gradeRouter(newFakeGradeStore())

	req := httptest.NewRequest(http.MethodGet, "/api/categories/animals/grade", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestListGrades(t *testing.T) {
	t.Parallel()

	gradeStore := newFakeGradeStore()
	require.NoError(t, gradeStore.Upsert(context.Background(), "animals", domain.SubModeForward, 100))
	require.NoError(t, gradeStore.Upsert(context.Background(), "verbs", domain.SubModeReverse, 50))
	router := gradeRouter(gradeStore)

	req := httptest.NewRequest(http.MethodGet, "/api/grades", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response []GradeRecordResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Len(t, response, 2)
}
