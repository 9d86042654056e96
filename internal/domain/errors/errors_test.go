package errors

import (
	"net/http"
	"testing"

	"swiftauth/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetails(t *testing.T) {
	annotated := ErrValidationFailed.WithDetails("email is required")

	assert.Equal(t, "email is required", annotated.Details())
	assert.Empty(t, ErrValidationFailed.Details(), "catalogue entry must stay untouched")
	assert.Equal(t, "Input validation failed: email is required", annotated.Error())
	assert.True(t, errors.Is(errors.Wrap(annotated, "register"), ErrValidationFailed))
	assert.False(t, errors.Is(annotated, ErrPasswordStrength))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "catalogue entry", err: ErrAccountNotFound, want: KindNotFound},
		{name: "wrapped entry", err: errors.Wrap(ErrDuplicateAccount, "create"), want: KindConflict},
		{name: "database", err: NewDatabaseExecuteError(errors.New("conn reset"), "insert"), want: KindUnexpected},
		{name: "plain error", err: errors.New("boom"), want: KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("conn reset")
	err := errors.Wrap(NewDatabaseExecuteError(cause, "insert account"), "register")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "insert account", appErr.Details())
	assert.True(t, errors.Is(err, cause))
}
