package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidSubscription = errors.New("invalid subscription type")

	// Dataset generation
	ErrMissingSource = errors.New("reference catalog is unreadable")
	ErrEmptyCatalog  = errors.New("reference catalog has no rows")
	ErrRecordParse   = errors.New("catalog record could not be parsed")
	ErrMappingGap    = errors.New("provisional id missing from persisted id mapping")
)

// Error codes
const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeNotFound      = "NOT_FOUND"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeInternalError = "INTERNAL_ERROR"
)

// RecordParseError describes a catalog row dropped during sampling
type RecordParseError struct {
	Row   int
	Title string
	Field string
	Err   error
}

func (e *RecordParseError) Error() string {
	return fmt.Sprintf("catalog row %d (%q): field %s: %v", e.Row, e.Title, e.Field, e.Err)
}

func (e *RecordParseError) Unwrap() error { return e.Err }

func (e *RecordParseError) Is(target error) bool { return target == ErrRecordParse }

// MappingGapError describes a viewing record dropped because a referenced
// provisional id was not persisted
type MappingGapError struct {
	Kind          string
	ProvisionalID int64
}

func (e *MappingGapError) Error() string {
	return fmt.Sprintf("%s id %d not found in mapping", e.Kind, e.ProvisionalID)
}

func (e *MappingGapError) Is(target error) bool { return target == ErrMappingGap }

// AppError represents application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidInput, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, message, ErrForbidden)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal server error", err)
}

// FromDomain maps a domain error onto an AppError
func FromDomain(err error) *AppError {
	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, ErrNotFound):
		return NewAppError(http.StatusNotFound, CodeNotFound, err.Error(), err)
	case errors.Is(err, ErrInvalidSubscription), errors.Is(err, ErrInvalidInput):
		return NewAppError(http.StatusBadRequest, CodeInvalidInput, err.Error(), err)
	case errors.Is(err, ErrMissingSource), errors.Is(err, ErrEmptyCatalog):
		return NewAppError(http.StatusUnprocessableEntity, CodeBadRequest, err.Error(), err)
	default:
		return InternalError(err)
	}
}
