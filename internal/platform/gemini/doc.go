// Package gemini implements the generation.Generator interface using
// Google's Gemini API. It handles prompt construction, retry with
// exponential backoff for transient failures, and parsing of the model's
// JSON responses into domain suggestions.
package gemini
