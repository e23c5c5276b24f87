package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure. Controllers translate kinds to HTTP
// statuses; services never log or retry, they just return the typed error.
type Kind int

const (
	KindStorage Kind = iota
	KindNotFound
	KindInvalidOperation
	KindDuplicateLabel
	KindAlreadyExists
	KindUnauthorized
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindInvalidOperation:
		return "INVALID_OPERATION"
	case KindDuplicateLabel:
		return "DUPLICATE_LABEL"
	case KindAlreadyExists:
		return "ALREADY_EXISTS"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindValidation:
		return "VALIDATION"
	default:
		return "STORAGE"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return New(KindNotFound, format, args...)
}

func InvalidOperation(format string, args ...interface{}) *Error {
	return New(KindInvalidOperation, format, args...)
}

func DuplicateLabel(format string, args ...interface{}) *Error {
	return New(KindDuplicateLabel, format, args...)
}

func AlreadyExists(format string, args ...interface{}) *Error {
	return New(KindAlreadyExists, format, args...)
}

func Unauthorized(format string, args ...interface{}) *Error {
	return New(KindUnauthorized, format, args...)
}

func Validation(format string, args ...interface{}) *Error {
	return New(KindValidation, format, args...)
}

// Storage wraps a driver/transaction failure. The original error stays
// reachable through errors.Unwrap for the HTTP layer's logging.
func Storage(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindStorage, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind from any error chain. Unknown errors are
// reported as storage failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// HTTPStatus maps a kind to the status the fiber error handler responds with.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return 404
	case KindInvalidOperation, KindValidation:
		return 400
	case KindDuplicateLabel, KindAlreadyExists:
		return 409
	case KindUnauthorized:
		return 403
	default:
		return 500
	}
}
