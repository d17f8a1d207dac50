package api

import (
	"time"

	"github.com/samber/lo"

	"github.com/lexidrill/lexidrill-api/internal/domain"
	"github.com/lexidrill/lexidrill-api/internal/service"
)

// CategoryResponse represents the response data for a category
type CategoryResponse struct {
	Name                 string     `json:"name"`
	Level                int        `json:"level"`
	LastCompletedForward *time.Time `json:"last_completed_forward,omitempty"`
	LastCompletedReverse *time.Time `json:"last_completed_reverse,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// CategoryStatusResponse extends CategoryResponse with the current lock
// state of both drill directions.
type CategoryStatusResponse struct {
	CategoryResponse
	LockedForward bool `json:"locked_forward"`
	LockedReverse bool `json:"locked_reverse"`
}

// WordResponse represents the response data for a word
type WordResponse struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Headword    string    `json:"headword"`
	Translation string    `json:"translation"`
	Association string    `json:"association,omitempty"`
	Points      int       `json:"points"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GradeRecordResponse represents the latest recorded percents for a category
type GradeRecordResponse struct {
	Category       string    `json:"category"`
	ForwardPercent *int      `json:"forward_percent"`
	ReversePercent *int      `json:"reverse_percent"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AttemptResponse represents the outcome of a drill attempt
type AttemptResponse struct {
	Correctness []bool           `json:"correctness"`
	Percent     int              `json:"percent"`
	Perfect     bool             `json:"perfect"`
	Advanced    bool             `json:"advanced"`
	Category    CategoryResponse `json:"category"`
	Words       []WordResponse   `json:"words"`
}

// SuggestionResponse represents one proposed vocabulary entry
type SuggestionResponse struct {
	Headword    string `json:"headword"`
	Translation string `json:"translation"`
}

func categoryToResponse(category domain.Category) CategoryResponse {
	return CategoryResponse{
		Name:                 category.Name,
		Level:                category.Level,
		LastCompletedForward: category.LastCompletedForward,
		LastCompletedReverse: category.LastCompletedReverse,
		CreatedAt:            category.CreatedAt,
		UpdatedAt:            category.UpdatedAt,
	}
}

func statusToResponse(status service.CategoryStatus) CategoryStatusResponse {
	return CategoryStatusResponse{
		CategoryResponse: categoryToResponse(status.Category),
		LockedForward:    status.LockedForward,
		LockedReverse:    status.LockedReverse,
	}
}

func wordToResponse(word domain.Word) WordResponse {
	return WordResponse{
		ID:          word.ID.String(),
		Category:    word.Category,
		Headword:    word.Headword,
		Translation: word.Translation,
		Association: word.Association,
		Points:      word.Points,
		CreatedAt:   word.CreatedAt,
		UpdatedAt:   word.UpdatedAt,
	}
}

func attemptToResponse(result service.AttemptResult) AttemptResponse {
	return AttemptResponse{
		Correctness: result.Result.Correctness,
		Percent:     result.Result.Percent,
		Perfect:     result.Result.Perfect(),
		Advanced:    result.Advanced,
		Category:    categoryToResponse(result.Category),
		Words:       lo.Map(result.Words, func(w domain.Word, _ int) WordResponse { return wordToResponse(w) }),
	}
}

func gradeToResponse(record domain.GradeRecord) GradeRecordResponse {
	return GradeRecordResponse{
		Category:       record.Category,
		ForwardPercent: record.ForwardPercent,
		ReversePercent: record.ReversePercent,
		UpdatedAt:      record.UpdatedAt,
	}
}
