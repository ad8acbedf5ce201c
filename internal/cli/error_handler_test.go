package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"tasktrackr/internal/errors"
	"tasktrackr/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	t.Run("validation errors get the friendly message", func(t *testing.T) {
		ve := validation.NewValidationError()
		ve.AddRequiredError("title")

		err := eh.Handle("create task", ve)
		assert.Equal(t, "failed to create task: title is required", err.Error())
	})

	t.Run("app errors get the user message", func(t *testing.T) {
		err := eh.Handle("list tasks", errors.NewDatabaseError("query tasks", fmt.Errorf("locked")))
		assert.Contains(t, err.Error(), "failed to list tasks")
		assert.NotContains(t, err.Error(), "locked")
	})

	t.Run("unknown errors are wrapped", func(t *testing.T) {
		cause := fmt.Errorf("boom")
		err := eh.Handle("do thing", cause)
		assert.ErrorIs(t, err, cause)
	})
}

func TestErrorHandler_IsValidationError(t *testing.T) {
	eh := NewErrorHandler()

	assert.True(t, eh.IsValidationError(validation.NewValidationError()))
	assert.True(t, eh.IsValidationError(errors.NewValidationError("bad", nil)))
	assert.False(t, eh.IsValidationError(fmt.Errorf("plain")))
}
