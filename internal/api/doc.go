// Package api contains the HTTP handlers, request/response models, and
// error mapping for the REST surface. Handlers stay thin: they decode and
// validate input, call a store or service, and translate errors to safe
// HTTP responses.
package api
