package services

import (
	"errors"
	"strings"
)

// Kind classifies a business error; controllers map kinds to HTTP statuses.
type Kind string

const (
	KindNotFound       Kind = "NOT_FOUND"
	KindForbidden      Kind = "FORBIDDEN"
	KindAlreadyChecked Kind = "ALREADY_CHECKED"
	KindValidation     Kind = "VALIDATION"
	KindConflict       Kind = "CONFLICT"
	KindUnauthorized   Kind = "UNAUTHORIZED"
)

// Error is a declared, request-scoped failure with a message safe to show to
// the caller.
type Error struct {
	Kind    Kind
	Message string
}

func (e Error) Error() string {
	return e.Message
}

var (
	ErrHabitNotFound    = Error{Kind: KindNotFound, Message: "habit not found"}
	ErrHabitForbidden   = Error{Kind: KindForbidden, Message: "not allowed to access this habit"}
	ErrAlreadyChecked   = Error{Kind: KindAlreadyChecked, Message: "habit already checked today"}
	ErrCategoryNotFound = Error{Kind: KindNotFound, Message: "category not found"}
	ErrCategoryExists   = Error{Kind: KindConflict, Message: "category already exists"}
	ErrUserNotFound     = Error{Kind: KindNotFound, Message: "user not found"}
	ErrEmailInUse       = Error{Kind: KindConflict, Message: "email already in use"}
	ErrBadCredentials   = Error{Kind: KindUnauthorized, Message: "invalid email or password"}
	ErrInvalidToken     = Error{Kind: KindUnauthorized, Message: "invalid or expired token"}
	ErrInvalidReset     = Error{Kind: KindValidation, Message: "invalid or expired token"}
	ErrReminderNotFound = Error{Kind: KindNotFound, Message: "reminder not found"}
	ErrReminderForbid   = Error{Kind: KindForbidden, Message: "not allowed to access this reminder"}
	ErrInvalidDate      = Error{Kind: KindValidation, Message: "invalid date"}
)

// ValidationError lists every rule an input broke.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func newValidationError(messages ...string) error {
	return &ValidationError{Messages: messages}
}

// KindOf returns the kind of a declared error, or "" for anything else.
func KindOf(err error) Kind {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return KindValidation
	}
	var e Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
