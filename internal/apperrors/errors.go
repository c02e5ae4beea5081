package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindMalformed  Kind = "malformed"
	KindConflict   Kind = "conflict"
	KindIO         Kind = "io"
	KindValidation Kind = "validation"
)

type Error struct {
	Kind Kind
	// SafeMessage is intended for user-facing output and logs.
	SafeMessage string
	// Cause keeps the original internal error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.SafeMessage); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindNotFound:
		return "The requested profile does not exist."
	case KindMalformed:
		return "The profile document could not be parsed."
	case KindConflict:
		return "A profile with that name already exists."
	case KindIO:
		return "A filesystem operation failed."
	case KindValidation:
		return "The provided value is not valid."
	default:
		return "Operation failed."
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{
		Kind:        kind,
		SafeMessage: msg,
		Cause:       cause,
	}
}

func NotFound(err error) error {
	return New(KindNotFound, "", err)
}

func Malformed(err error) error {
	return New(KindMalformed, "", err)
}

func Conflict(err error) error {
	return New(KindConflict, "", err)
}

func IO(err error) error {
	return New(KindIO, "", err)
}

func Validation(err error) error {
	return New(KindValidation, "", err)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

// PublicMessage returns the user-facing message, falling back to the plain
// error text for errors that did not originate here.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

func IsNotFound(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == KindNotFound
}

func IsConflict(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == KindConflict
}
