package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies a failure into the stable taxonomy the HTTP layer
// translates from. Callers check kinds with errors.As + AppError.Kind,
// never by matching message strings.
type Kind int

const (
	KindUnauthenticated Kind = iota
	KindForbidden
	KindValidation
	KindNotFound
	KindLimitExceeded
	KindConflict
	KindInternal
)

func (k Kind) HTTPStatus() int {
	switch k {
	case KindUnauthenticated:
		return fiber.StatusUnauthorized
	case KindForbidden, KindLimitExceeded:
		return fiber.StatusForbidden
	case KindValidation:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]interface{}
	Fields  []FieldError
	cause   error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func New(kind Kind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

func Unauthenticated(message string) *AppError {
	return New(KindUnauthenticated, "UNAUTHENTICATED", message)
}

func Forbidden(code, message string) *AppError {
	return New(KindForbidden, code, message)
}

func NotFound(code, message string) *AppError {
	return New(KindNotFound, code, message)
}

func Conflict(code, message string) *AppError {
	return New(KindConflict, code, message)
}

func Validation(fields []FieldError) *AppError {
	e := New(KindValidation, "VALIDATION_FAILED", "invalid input data")
	e.Fields = fields
	return e
}

// LimitExceeded carries enough structured detail for a client to render an
// upgrade prompt.
func LimitExceeded(current, limit int, subscription string) *AppError {
	e := New(KindLimitExceeded, "NOTE_LIMIT_REACHED", "note limit reached")
	e.Details = map[string]interface{}{
		"current":      current,
		"limit":        limit,
		"subscription": subscription,
	}
	return e
}

// Internal wraps an unexpected collaborator failure. The cause stays attached
// for logging but is never rendered to the caller.
func Internal(cause error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Code:    "INTERNAL",
		Message: "internal server error",
		cause:   cause,
	}
}

// From returns err as an *AppError, wrapping unknown errors as Internal.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
