package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError("city", "insert", "Athens", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "city store: insert")
	assert.Contains(t, err.Error(), "key=Athens")
}

func TestStoreError_NilKey(t *testing.T) {
	err := NewStoreError("user", "getAll", nil, errors.New("timeout"))
	assert.Equal(t, "user store: getAll: timeout", err.Error())
}

func TestIsStoreError(t *testing.T) {
	inner := NewStoreError("teacher", "delete", int64(7), errors.New("boom"))
	wrapped := fmt.Errorf("while cascading: %w", inner)

	assert.True(t, IsStoreError(inner))
	assert.True(t, IsStoreError(wrapped))
	assert.False(t, IsStoreError(errors.New("plain")))
	assert.False(t, IsStoreError(nil))
}
