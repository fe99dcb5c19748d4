package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSessionExpired signals that the backend rejected the session's
	// token. The transport layer emits it after clearing the persisted
	// session; the navigation layer turns it into a login redirect.
	ErrSessionExpired = errors.New("session expired")

	// ErrCorruptSession marks a persisted session record that failed to
	// parse. Treated as corruption, not a retryable error.
	ErrCorruptSession = errors.New("corrupt session record")

	// ErrProfileMissing is returned when an operation needs a role profile
	// that has not been created yet.
	ErrProfileMissing = errors.New("create your profile first")

	// ErrFileTooLarge and ErrFileType reject uploads before any network
	// call is attempted.
	ErrFileTooLarge = errors.New("file size too large, max 5MB")
	ErrFileType     = errors.New("invalid file type, upload PDF, Word or image")
)

// BackendError carries a non-auth failure reported by the backend,
// decoded from its error envelope. Field validation messages are kept
// individually and joined into Message.
type BackendError struct {
	Status  int
	Message string
	Fields  []string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// NewBackendError builds a BackendError from a single message or a
// field-validation list. With n field messages the joined Message
// contains exactly n fragments.
func NewBackendError(status int, message string, fields []string) *BackendError {
	if len(fields) > 0 {
		message = strings.Join(fields, ". ")
	}
	return &BackendError{Status: status, Message: message, Fields: fields}
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var be *BackendError
	return errors.As(err, &be) && be.Status == 404
}
