// Package store defines the persistence interfaces and shared error taxonomy
// for the application's data layer. Implementations live under
// internal/platform; services depend only on the interfaces defined here.
package store
