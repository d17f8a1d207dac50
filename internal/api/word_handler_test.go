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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexidrill/lexidrill-api/internal/domain"
	"github.com/lexidrill/lexidrill-api/internal/store"
)

// fakeWordStore is an in-memory WordStore for handler tests. Words are
// listed in insertion order, like the real store's created_at ordering.
type fakeWordStore struct {
	words map[uuid.UUID]*domain.Word
	order []uuid.UUID
}

func newFakeWordStore() *fakeWordStore {
	return &fakeWordStore{words: make(map[uuid.UUID]*domain.Word)}
}

func (s *fakeWordStore) Create(ctx context.Context, word *domain.Word) error {
	for _, existing := range s.words {
		if existing.Category == word.Category && existing.Headword == word.Headword {
			return fmt.Errorf("%w: %s", store.ErrWordExists, word.Headword)
		}
	}
	copied := *word
	s.words[word.ID] = &copied
	s.order = append(s.order, word.ID)
	return nil
}

func (s *fakeWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	word, ok := s.words[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrWordNotFound, id)
	}
	copied := *word
	return &copied, nil
}

func (s *fakeWordStore) ListByCategory(ctx context.Context, category string) ([]*domain.Word, error) {
	result := make([]*domain.Word, 0)
	for _, id := range s.order {
		word, ok := s.words[id]
		if !ok || word.Category != category {
			continue
		}
		copied := *word
		result = append(result, &copied)
	}
	return result, nil
}

func (s *fakeWordStore) Update(ctx context.Context, word *domain.Word) error {
	if _, ok := s.words[word.ID]; !ok {
		return fmt.Errorf("%w: %s", store.ErrWordNotFound, word.ID)
	}
	copied := *word
	s.words[word.ID] = &copied
	return nil
}

func (s *fakeWordStore) UpdatePoints(ctx context.Context, words []domain.Word) error {
	for _, word := range words {
		stored, ok := s.words[word.ID]
		if !ok {
			return fmt.Errorf("%w: %s", store.ErrWordNotFound, word.ID)
		}
		stored.Points = word.Points
		stored.UpdatedAt = word.UpdatedAt
	}
	return nil
}

func (s *fakeWordStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.words[id]; !ok {
		return fmt.Errorf("%w: %s", store.ErrWordNotFound, id)
	}
	delete(s.words, id)
	return nil
}

func (s *fakeWordStore) WithTx(tx *sql.Tx) store.WordStore { return s }

func wordRouter(wordStore store.WordStore) *chi.Mux {
	handler := NewWordHandler(wordStore, testLogger())
	router := chi.NewRouter()
	router.Get("/api/categories/{category}/words", handler.ListWords)
	router.Post("/api/categories/{category}/words", handler.CreateWord)
	router.Put("/api/words/{id}", handler.UpdateWord)
	router.Delete("/api/words/{id}", handler.DeleteWord)
	return router
}

func seedWord(t *testing.T, s *fakeWordStore, category, headword, translation string) *domain.Word {
	t.Helper()

	word, err := domain.NewWord(category, headword, translation, "")
	require.NoError(t, err)
	require.NoError(t, s.Create(context.Background(), word))
	return word
}

func TestCreateWord(t *testing.T) {
	t.Parallel()

	wordStore := newFakeWordStore()
	router := wordRouter(wordStore)

	recorder := postJSON(t, router, "/api/categories/animals/words",
		`{"headword":"  Gato ","translation":"CAT","association":"meow"}`)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var response WordResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "gato", response.Headword)
	assert.Equal(t, "cat", response.Translation)
	assert.Equal(t, "meow", response.Association)
	assert.Equal(t, "animals", response.Category)
	assert.Equal(t, 0, response.Points)
}

func TestCreateWordDuplicate(t *testing.T) {
	t.Parallel()

	wordStore := newFakeWordStore()
	seedWord(t, wordStore, "animals", "gato", "cat")
	router := wordRouter(wordStore)

	recorder := postJSON(t, router, "/api/categories/animals/words",
		`{"headword":"gato","translation":"cat"}`)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestCreateWordValidation(t *testing.T) {
	t.Parallel()

	wordStore := newFakeWordStore()
	router := wordRouter(wordStore)

	for _, body := range []string{
		`{}`,
		`{"headword":"gato"}`,
		`{"translation":"cat"}`,
		`not json`,
	} {
		recorder := postJSON(t, router, "/api/categories/animals/words", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "body: %s", body)
	}
}

func TestListWords(t *testing.T) {
	t.Parallel()

	wordStore := newFakeWordStore()
	seedWord(t, wordStore, "animals", "gato", "cat")
	seedWord(t, wordStore, "animals", "perro", "dog")
	seedWord(t, wordStore, "verbs", "correr", "to run")
	router := wordRouter(wordStore)

	req := httptest.NewRequest(http.MethodGet, "/api/categories/animals/words", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response []WordResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	require.Len(t, response, 2)
	assert.Equal(t, "gato", response[0].Headword)
	assert.Equal(t, "perro", response[1].Headword)
}

func TestUpdateWord(t *testing.T) {
	t.Parallel()

	wordStore := newFakeWordStore()
	word := seedWord(t, wordStore, "animals", "gato", "cat")
	router := wordRouter(wordStore)

	req := httptest.NewRequest(http.MethodPut, "/api/words/"+word.ID.String(),
		jsonBody(`{"headword":"gata","translation":"cat (female)"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response WordResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "gata", response.Headword)
	assert.Equal(t, "cat (female)", response.Translation)

	stored, err := wordStore.GetByID(context.Background(), word.ID)
	require.NoError(t, err)
	assert.Equal(t, "gata", stored.Headword)
}

func TestUpdateWordInvalidID(t *testing.T) {
	t.Parallel()

	router := wordRouter(newFakeWordStore())

	req := httptest.NewRequest(http.MethodPut, "/api/words/not-a-uuid",
		jsonBody(`{"headword":"gata","translation":"cat"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDeleteWord(t *testing.T) {
	t.Parallel()

	wordStore := newFakeWordStore()
	word := seedWord(t, wordStore, "animals", "gato", "cat")
	router := wordRouter(wordStore)

	req := httptest.NewRequest(http.MethodDelete, "/api/words/"+word.ID.String(), nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusNoContent, recorder.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/words/"+word.ID.String(), nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
