package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockErrors(t *testing.T) {
	out := NewOutOfStockError("Napa", "Tablet")
	assert.Equal(t, 404, out.Code)
	assert.Contains(t, out.Message, "Napa")
	assert.Contains(t, out.Message, "Tablet")

	short := NewInsufficientStockError("Napa", 70, 80)
	assert.Equal(t, 400, short.Code)
	assert.Contains(t, short.Message, "70 available")
	assert.Contains(t, short.Message, "80 requested")
}

func TestGetAppError(t *testing.T) {
	appErr := NewNotFoundError("Invoice")
	assert.Equal(t, appErr, GetAppError(appErr))

	plain := errors.New("boom")
	wrapped := GetAppError(plain)
	assert.Equal(t, 500, wrapped.Code)
	assert.Equal(t, "boom", wrapped.Message)

	assert.True(t, IsAppError(appErr))
	assert.False(t, IsAppError(plain))
}
