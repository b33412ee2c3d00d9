package domain

import "fmt"

// Общие доменные ошибки
var (
	ErrNotFound        = notFoundError("not found")
	ErrValidation      = validationError("invalid data")
	ErrInvalidWindow   = validationError("invalid window: window length must be positive")
	ErrUnauthorized    = authError("unauthorized")
	ErrForbidden       = authError("forbidden")
	ErrConflict        = conflictError("already exists")
	ErrDataUnavailable = unavailableError("data unavailable")
)

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

type validationError string

func (e validationError) Error() string { return string(e) }

type authError string

func (e authError) Error() string { return string(e) }

type conflictError string

func (e conflictError) Error() string { return string(e) }

type unavailableError string

func (e unavailableError) Error() string { return string(e) }

// detailedError добавляет пояснение, сохраняя сравнение через errors.Is.
type detailedError struct {
	kind error
	msg  string
}

func (e *detailedError) Error() string { return e.msg }

func (e *detailedError) Unwrap() error { return e.kind }

func validationErrorf(format string, args ...any) error {
	return &detailedError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

// Invalid возвращает ошибку валидации с текстом для клиента.
func Invalid(format string, args ...any) error {
	return validationErrorf(format, args...)
}
