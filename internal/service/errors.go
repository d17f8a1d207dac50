// Package service contains the application services that compose the
// progress engine with the persistence layer. Services own transaction
// boundaries; stores and the engine stay oblivious to them.
package service

import "errors"

// Common service errors
var (
	// ErrNoWords is returned when a drill attempt is submitted for a
	// category that has no words to drill.
	ErrNoWords = errors.New("category has no words")
)
