package gemini

// suggestionSchema is one entry in the model's JSON response.
type suggestionSchema struct {
	Headword    string `json:"headword"`
	Translation string `json:"translation"`
}

// suggestionsResponse is the expected JSON shape for word suggestions.
type suggestionsResponse struct {
	Suggestions []suggestionSchema `json:"suggestions"`
}

// headwordResponse is the expected JSON shape for a single headword lookup.
type headwordResponse struct {
	Headword string `json:"headword"`
}

// promptData carries the fields available to the prompt templates.
type promptData struct {
	Category    string
	Existing    string
	Count       int
	Translation string
}
