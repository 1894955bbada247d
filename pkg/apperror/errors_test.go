package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAppError_PassesThroughAppErrors(t *testing.T) {
	err := NewNotFoundError("Employee")
	wrapped := fmt.Errorf("lookup failed: %w", err)

	got := GetAppError(wrapped)
	assert.Equal(t, http.StatusNotFound, got.Code)
	assert.Equal(t, "Employee not found", got.Message)
}

func TestGetAppError_HidesUnknownErrorText(t *testing.T) {
	got := GetAppError(errors.New(`pq: duplicate key value violates unique constraint "idx_employee_period"`))
	assert.Equal(t, http.StatusInternalServerError, got.Code)
	assert.Equal(t, "Internal server error", got.Message)
	assert.NotContains(t, got.Message, "pq:")
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(NewConflictError("taken")))
	assert.False(t, IsAppError(errors.New("plain")))
}
