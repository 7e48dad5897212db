package domain

import "errors"

// Error codes for business logic errors. Values are stable and may be
// exposed to callers.
const (
	CodeNotFound           = 1
	CodeAlreadyExists      = 2
	CodeValidation         = 3
	CodeInternal           = 4
	CodeInvalidCredentials = 5
	CodePermission         = 6
	CodeDatastore          = 7
)

// AppError represents a business logic error with a code, message, and optional wrapped error.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined business errors.
//
// To check whether an error matches one of these categories, use the
// corresponding helper function (IsNotFound, IsAlreadyExists, etc.)
// instead of errors.Is. The helpers compare error codes through errors.As,
// so they also match freshly constructed instances from NewAppError and
// wrapped errors.
var (
	ErrNotFound           = &AppError{Code: CodeNotFound, Message: "not found"}
	ErrAlreadyExists      = &AppError{Code: CodeAlreadyExists, Message: "already exists"}
	ErrValidation         = &AppError{Code: CodeValidation, Message: "validation error"}
	ErrInternal           = &AppError{Code: CodeInternal, Message: "internal error"}
	ErrInvalidCredentials = &AppError{Code: CodeInvalidCredentials, Message: "Wrong email or password."}
	ErrPermission         = &AppError{Code: CodePermission, Message: "permission denied"}
	ErrDatastore          = &AppError{Code: CodeDatastore, Message: "datastore error"}
)

// NewAppError creates a new AppError with the given code, message, and wrapped error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError is shorthand for a CodeValidation error without a cause.
func NewValidationError(message string) *AppError {
	return NewAppError(CodeValidation, message, nil)
}

// IsNotFound reports whether err is or wraps an AppError with CodeNotFound.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsAlreadyExists reports whether err is or wraps an AppError with CodeAlreadyExists.
func IsAlreadyExists(err error) bool {
	return hasCode(err, CodeAlreadyExists)
}

// IsValidation reports whether err is or wraps an AppError with CodeValidation.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

// IsInternal reports whether err is or wraps an AppError with CodeInternal.
func IsInternal(err error) bool {
	return hasCode(err, CodeInternal)
}

// IsInvalidCredentials reports whether err is or wraps an AppError with CodeInvalidCredentials.
func IsInvalidCredentials(err error) bool {
	return hasCode(err, CodeInvalidCredentials)
}

// IsPermission reports whether err is or wraps an AppError with CodePermission.
func IsPermission(err error) bool {
	return hasCode(err, CodePermission)
}

// IsDatastore reports whether err is or wraps an AppError with CodeDatastore.
func IsDatastore(err error) bool {
	return hasCode(err, CodeDatastore)
}

// hasCode checks whether err is or wraps an *AppError with the given code.
func hasCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Message returns the user-facing message of err. For an *AppError it is
// the Message field alone; any other error yields its Error() text.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
