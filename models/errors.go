package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested article, category or
	// navigation entry does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName is returned when a category name collides with an
	// existing one. The pre-check is read-then-write, so two concurrent
	// creations of the same name can both pass it.
	ErrDuplicateName = errors.New("category name already exists")

	// ErrIndexUnavailable signals that the store rejected a query because
	// a required composite index is missing. It is handled internally by
	// the in-memory fallback path and never reaches a caller.
	ErrIndexUnavailable = errors.New("index required for query")

	// ErrStoreUnavailable covers collaborator outages. Never retried.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError is resolved entirely locally: it is produced before any
// store contact and is never logged remotely.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

type AuthErrorCode string

const (
	AuthInvalidCredentials AuthErrorCode = "invalid-credentials"
	AuthUnknownUser        AuthErrorCode = "unknown-user"
	AuthMalformedAddress   AuthErrorCode = "malformed-address"
)

type AuthError struct {
	Code AuthErrorCode
}

func (e *AuthError) Error() string {
	return string(e.Code)
}

// PartialFailure reports a cascading category deletion that updated some
// referencing articles but not all of them. Partial completion is a normal
// outcome of the unordered update batch, not an exceptional one.
type PartialFailure struct {
	UpdatedCount int    `json:"updated_count"`
	FailedIDs    []uint `json:"failed_ids"`
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("updated %d articles, %d failed", e.UpdatedCount, len(e.FailedIDs))
}
