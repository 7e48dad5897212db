package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "with wrapped error",
			err:  &AppError{Code: CodeDatastore, Message: "datastore error", Err: errors.New("FOREIGN KEY constraint failed")},
			want: "datastore error: FOREIGN KEY constraint failed",
		},
		{
			name: "without wrapped error",
			err:  &AppError{Code: CodeNotFound, Message: "Vacation with id 100 does not exist."},
			want: "Vacation with id 100 does not exist.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.want {
				t.Errorf("Error() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("inner error")
	appErr := &AppError{Code: CodeInternal, Message: "something failed", Err: inner}

	if !errors.Is(appErr, inner) {
		t.Error("Unwrap() should allow errors.Is to find wrapped error")
	}

	appErr2 := &AppError{Code: CodeInternal, Message: "no wrap"}
	if appErr2.Unwrap() != nil {
		t.Error("Unwrap() should return nil when Err is nil")
	}
}

func TestNewAppError(t *testing.T) {
	inner := errors.New("db error")
	appErr := NewAppError(CodeDatastore, "datastore error", inner)

	if appErr.Code != CodeDatastore {
		t.Errorf("Code = %d; want %d", appErr.Code, CodeDatastore)
	}
	if appErr.Message != "datastore error" {
		t.Errorf("Message = %q; want %q", appErr.Message, "datastore error")
	}
	if !errors.Is(appErr, inner) {
		t.Error("should wrap inner error")
	}
}

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		checkFn func(error) bool
		code    int
	}{
		{"ErrNotFound", ErrNotFound, IsNotFound, CodeNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists, IsAlreadyExists, CodeAlreadyExists},
		{"ErrValidation", ErrValidation, IsValidation, CodeValidation},
		{"ErrInternal", ErrInternal, IsInternal, CodeInternal},
		{"ErrInvalidCredentials", ErrInvalidCredentials, IsInvalidCredentials, CodeInvalidCredentials},
		{"ErrPermission", ErrPermission, IsPermission, CodePermission},
		{"ErrDatastore", ErrDatastore, IsDatastore, CodeDatastore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var appErr *AppError
			if !errors.As(tt.err, &appErr) {
				t.Fatal("should be *AppError")
			}
			if appErr.Code != tt.code {
				t.Errorf("Code = %d; want %d", appErr.Code, tt.code)
			}
			if !tt.checkFn(tt.err) {
				t.Errorf("check function should return true for %s", tt.name)
			}
		})
	}
}

func TestIsCheckers_WithWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("unlike: %w", NewAppError(CodeNotFound, "Cannot unlike a vacation that was not liked.", nil))
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should detect wrapped not found error")
	}
	if IsAlreadyExists(wrapped) {
		t.Error("IsAlreadyExists should return false for a not found error")
	}
}

func TestIsCheckers_NonAppError(t *testing.T) {
	plainErr := errors.New("some error")
	checks := map[string]func(error) bool{
		"IsNotFound":           IsNotFound,
		"IsAlreadyExists":      IsAlreadyExists,
		"IsValidation":         IsValidation,
		"IsInternal":           IsInternal,
		"IsInvalidCredentials": IsInvalidCredentials,
		"IsPermission":         IsPermission,
		"IsDatastore":          IsDatastore,
	}
	for name, fn := range checks {
		if fn(plainErr) {
			t.Errorf("%s should return false for non-AppError", name)
		}
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("boom"), "boom"},
		{"app error drops cause", NewAppError(CodeDatastore, "datastore error", errors.New("driver")), "datastore error"},
		{"wrapped app error", fmt.Errorf("ctx: %w", NewValidationError("All fields are required.")), "All fields are required."},
		{"invalid credentials", ErrInvalidCredentials, "Wrong email or password."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err); got != tt.want {
				t.Errorf("Message() = %q; want %q", got, tt.want)
			}
		})
	}
}
