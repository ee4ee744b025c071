package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoteError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewRemoteError("fetch tasks", cause)

	assert.True(t, err.IsType(ErrorTypeRemote))
	assert.Equal(t, "REMOTE_FAILURE", err.Code)
	assert.Contains(t, err.Error(), "fetch tasks")
	assert.Contains(t, err.Error(), "connection refused")

	operation, ok := err.GetContext("operation")
	require.True(t, ok)
	assert.Equal(t, "fetch tasks", operation)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "t1")

	assert.True(t, err.IsType(ErrorTypeNotFound))
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Contains(t, err.Message, "task not found: t1")
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("title cannot be empty", nil)

	assert.True(t, err.IsType(ErrorTypeValidation))
	assert.Equal(t, "VALIDATION_FAILED", err.Code)
	assert.Nil(t, err.Cause)
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := NewDatabaseError("open session store", cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, NewDatabaseError("other", nil)))
}

func TestAsAppError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "should match direct AppError", err: NewRemoteError("delete task", nil), want: true},
		{name: "should match wrapped AppError", err: fmt.Errorf("outer: %w", NewRemoteError("delete task", nil)), want: true},
		{name: "should not match plain error", err: fmt.Errorf("plain"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := AsAppError(tt.err)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.want, IsAppError(tt.err))
		})
	}
}

func TestIsErrorType(t *testing.T) {
	remote := NewRemoteError("search tasks", nil)

	assert.True(t, IsErrorType(remote, ErrorTypeRemote))
	assert.False(t, IsErrorType(remote, ErrorTypeNotFound))
	assert.False(t, IsErrorType(fmt.Errorf("plain"), ErrorTypeRemote))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "should pass through validation message",
			err:  NewValidationError("title cannot be empty", nil),
			want: "title cannot be empty",
		},
		{
			name: "should include cause for remote errors",
			err:  NewRemoteError("fetch tasks", fmt.Errorf("network unreachable")),
			want: "remote task service call failed: fetch tasks: network unreachable",
		},
		{
			name: "should hide database details",
			err:  NewDatabaseError("save session", fmt.Errorf("disk full")),
			want: "A local storage error occurred. Please try again.",
		},
		{
			name: "should fall back to plain error text",
			err:  fmt.Errorf("something odd"),
			want: "something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetUserMessage(tt.err))
		})
	}
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad input", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("task", "t1")))
	assert.True(t, ShouldLogError(NewRemoteError("fetch tasks", nil)))
	assert.True(t, ShouldLogError(NewDatabaseError("save session", nil)))
	assert.True(t, ShouldLogError(fmt.Errorf("plain")))
}
