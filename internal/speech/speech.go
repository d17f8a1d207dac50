// Package speech defines the interface and errors for pronunciation audio
// synthesis. Like the generation package it is a boundary: the application
// core depends on the Synthesizer interface and the cloud implementation
// lives under internal/platform.
package speech

import (
	"context"
	"errors"
)

// Common errors returned by the speech package
var (
	// ErrSynthesisFailed is returned when audio synthesis fails for any general reason
	ErrSynthesisFailed = errors.New("failed to synthesize speech")

	// ErrEmptyText is returned when synthesis is requested for empty text
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrNotConfigured is returned when synthesis is requested but the
	// feature is disabled in configuration.
	ErrNotConfigured = errors.New("speech synthesis is not configured")
)

// Synthesizer converts vocabulary text into pronunciation audio.
type Synthesizer interface {
	// Synthesize renders the given text as MP3 audio in the synthesizer's
	// configured language.
	Synthesize(ctx context.Context, text string) ([]byte, error)

	// Close releases the underlying client resources.
	Close() error
}
