// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/treegen/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "schema_error",
			code:    errors.ErrSchemaInvalid,
			message: "value must be a mapping or list",
			wantStr: "[SCHEMA_INVALID] value must be a mapping or list",
		},
		{
			name:    "missing_var_error",
			code:    errors.ErrMissingVar,
			message: "no value for placeholder",
			wantStr: "[SUBSTITUTE_MISSING_KEY] no value for placeholder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrDirCreate, "cannot create directory")

		if err.Code != errors.ErrDirCreate {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrDirCreate)
		}

		if !stderrors.Is(err, baseErr) {
			t.Error("Wrap() should preserve the wrapped error for errors.Is")
		}

		wantStr := "[DIR_CREATE] cannot create directory: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrDirCreate, "ignored"); err != nil {
			t.Errorf("Wrap(nil) = %v, want nil", err)
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrFileRead, "cannot read %q", "seed.txt")

	if !errors.IsErrorCode(err, errors.ErrFileRead) {
		t.Error("IsErrorCode() should match the error's code")
	}

	if errors.IsErrorCode(err, errors.ErrFileWrite) {
		t.Error("IsErrorCode() should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrFileRead) {
		t.Error("IsErrorCode() should not match plain errors")
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrMissingVar, "no value for placeholder").
		WithDetail("key", "env")

	details := errors.GetErrorDetails(err)
	if details["key"] != "env" {
		t.Errorf("GetErrorDetails()[key] = %v, want env", details["key"])
	}

	if got := errors.GetErrorCode(err); got != errors.ErrMissingVar {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrMissingVar)
	}
}
