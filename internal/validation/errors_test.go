package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	t.Run("no errors", func(t *testing.T) {
		ve := NewValidationError()
		assert.Equal(t, "validation error", ve.Error())
	})

	t.Run("single error", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("title")
		assert.Equal(t, "validation error for field 'title': title is required", ve.Error())
	})

	t.Run("multiple errors", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("title")
		ve.AddInvalidValueError("task_id", 0, "must be a positive integer")
		assert.Contains(t, ve.Error(), "multiple validation errors")
		assert.Contains(t, ve.Error(), "title")
		assert.Contains(t, ve.Error(), "task_id")
	})
}

func TestValidationError_HasErrors(t *testing.T) {
	ve := NewValidationError()
	assert.False(t, ve.HasErrors())

	ve.AddRequiredError("title")
	assert.True(t, ve.HasErrors())
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError()))
	assert.False(t, IsValidationError(fmt.Errorf("plain error")))
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	t.Run("single error uses the field message", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("title")
		assert.Equal(t, "title is required", ve.GetUserFriendlyMessage())
	})

	t.Run("multiple errors are listed", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("title")
		ve.AddInvalidValueError("task_id", -1, "must be a positive integer")
		msg := ve.GetUserFriendlyMessage()
		assert.Contains(t, msg, "Multiple validation errors occurred")
		assert.Contains(t, msg, "- title is required")
	})
}
