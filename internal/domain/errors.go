package domain

import (
	"errors"
	"fmt"
)

// ErrKind is used to map domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindValidation ErrKind = "validation" // 400
	KindAuth       ErrKind = "auth"       // 401
	KindConflict   ErrKind = "conflict"   // 409
	KindStore      ErrKind = "store"      // 500 (data store failure)
	KindInternal   ErrKind = "internal"   // 500
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code (do not change casually)
// - Message: safe summary for clients (avoid leaking sensitive details)
// - Meta: optional details (field, table, etc.)
// - Cause: wrapped internal error for logging/diagnostics
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Meta    map[string]string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind ErrKind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Wrap(kind ErrKind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func WithMeta(err *Error, meta map[string]string) *Error {
	err.Meta = meta
	return err
}

func Is(err error, code string) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ----------------------
// Validation errors (400)
// ----------------------

func ErrInvalidJSON(cause error) *Error {
	return Wrap(KindValidation, "invalid_json", "Invalid JSON body", cause)
}

// ErrMissingFields carries the per-action required-field message verbatim.
func ErrMissingFields(msg string) *Error {
	return New(KindValidation, "missing_fields", msg)
}

func ErrLoginFieldsRequired() *Error {
	return ErrMissingFields("Email and password are required")
}

func ErrRegisterFieldsRequired() *Error {
	return ErrMissingFields("Email, password, first name, last name, and username are required")
}

func ErrUnknownAction(action string) *Error {
	return WithMeta(New(KindValidation, "unknown_action", "Unknown action"), map[string]string{
		"action": action,
	})
}

// ----------------------
// Auth errors (401)
// ----------------------

func ErrUserNotFound() *Error {
	return New(KindAuth, "user_not_found", "User not found")
}

func ErrInvalidCredentials() *Error {
	return New(KindAuth, "invalid_credentials", "Invalid credentials")
}

// ----------------------
// Conflict (409)
// ----------------------

func ErrEmailExists() *Error {
	return New(KindConflict, "email_exists", "Email already exists")
}

func ErrUsernameExists() *Error {
	return New(KindConflict, "username_exists", "Username already exists")
}

// ErrDuplicateUser covers a uniqueness violation reported by the store
// itself when a concurrent registration wins the check-then-act race.
func ErrDuplicateUser(cause error) *Error {
	return Wrap(KindConflict, "duplicate_user", "Email or username already exists", cause)
}

// ----------------------
// Store / internal (500)
// ----------------------

func ErrStoreFailure(cause error) *Error {
	return Wrap(KindStore, "store_failure", "Database error", cause)
}

func ErrRegistrationFailed(cause error) *Error {
	return Wrap(KindInternal, "registration_failed", "Registration failed", cause)
}

func ErrHashFailed(cause error) *Error {
	return Wrap(KindInternal, "hash_failed", "Password hashing failed", cause)
}

func ErrRandomFailed(cause error) *Error {
	return Wrap(KindInternal, "random_failed", "Token generation failed", cause)
}

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "Internal error", cause)
}

// ErrProfileWrite marks a failed secondary profile insert. It is logged
// with the offending user id and never surfaced to the caller.
func ErrProfileWrite(table, userID string, cause error) *Error {
	return WithMeta(
		Wrap(KindInternal, "profile_write_failed", "Profile record creation failed", cause),
		map[string]string{"table": table, "user_id": userID},
	)
}
