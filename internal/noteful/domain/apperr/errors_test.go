package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"noteful/internal/noteful/domain/apperr"
)

func TestErrorKinds(t *testing.T) {
	cause := errors.New("duplicate key")

	tests := []struct {
		name    string
		err     error
		kind    error
		message string
		warning bool
		invalid bool
	}{
		{
			name:    "invalid identifier",
			err:     apperr.InvalidIdentifier("id", "abc"),
			kind:    apperr.ErrInvalidIdentifier,
			message: "The `id` is not valid",
			invalid: true,
		},
		{
			name:    "missing field",
			err:     apperr.MissingRequiredField("title"),
			kind:    apperr.ErrMissingRequiredField,
			message: "Missing `title` in request body",
			invalid: true,
		},
		{
			name:    "invalid parameter",
			err:     apperr.InvalidParameter("searchTerm"),
			kind:    apperr.ErrInvalidParameter,
			message: "The `searchTerm` is not valid",
			invalid: true,
		},
		{
			name:    "uniqueness conflict",
			err:     apperr.UniquenessConflict("folder", "Work", cause),
			kind:    apperr.ErrUniquenessConflict,
			message: "Folder name already exists",
			invalid: true,
		},
		{
			name:    "cleanup failed",
			err:     apperr.CleanupFailed("tag", "000000000000000000000001", cause),
			kind:    apperr.ErrCleanupFailed,
			message: "tag 000000000000000000000001 deleted but references were not cleaned up: duplicate key",
			warning: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("use case: %w", tc.err)

			assert.ErrorIs(t, wrapped, tc.kind)
			assert.Equal(t, tc.message, tc.err.Error())
			assert.Equal(t, tc.warning, apperr.IsWarning(wrapped))
			assert.Equal(t, tc.invalid, apperr.IsValidation(wrapped))
		})
	}
}

func TestErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperr.CleanupFailed("folder", "x", cause)

	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, apperr.ErrUniquenessConflict)
}
