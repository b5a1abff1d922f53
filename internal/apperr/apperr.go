package apperr

import (
	"errors"
	"net/http"
)

// Error is a typed application error that knows its HTTP status.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap copies base with a new message and cause.
func Wrap(err error, base *Error, message string) *Error {
	if base == nil {
		base = ErrInternal
	}
	copy := *base
	if message != "" {
		copy.Message = message
	}
	copy.Err = err
	return &copy
}

// WithMessage copies base with a different human readable message.
func WithMessage(base *Error, message string) *Error {
	copy := *base
	copy.Message = message
	return &copy
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

func Status(err error) int {
	if e, ok := As(err); ok && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

func Code(err error) string {
	if e, ok := As(err); ok && e.Code != "" {
		return e.Code
	}
	return ErrInternal.Code
}

func Message(err error) string {
	if e, ok := As(err); ok {
		if e.Message != "" {
			return e.Message
		}
		if e.Status >= http.StatusInternalServerError {
			return ErrInternal.Message
		}
		if e.Err != nil {
			return e.Err.Error()
		}
		return e.Code
	}
	return ErrInternal.Message
}

var (
	ErrUnauthenticated = New("unauthenticated", http.StatusUnauthorized, "Could not validate credentials")
	ErrTenantInactive  = New("tenant_inactive", http.StatusForbidden, "Gym subscription is inactive. Please complete payment to continue.")
	ErrForbidden       = New("forbidden", http.StatusForbidden, "Insufficient permissions")
	ErrNotFound        = New("not_found", http.StatusNotFound, "Resource not found")
	ErrValidation      = New("validation_error", http.StatusBadRequest, "Invalid request")
	ErrConflict        = New("conflict", http.StatusBadRequest, "Resource already exists")
	ErrInvalidState    = New("invalid_state", http.StatusBadRequest, "Operation not allowed in current state")
	ErrInternal        = New("internal_error", http.StatusInternalServerError, "Internal server error")
)
