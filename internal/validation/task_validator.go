package validation

import (
	"strings"
	"time"

	"taskdeck/internal/domain"
	"taskdeck/internal/errors"
)

// Input validation is a UI concern: the list controller forwards intents
// to the remote service unvalidated, so anything worth catching early is
// caught here, before an intent is issued.

const (
	titleMaxLength = 255
	dueDateLayout  = "2006-01-02"
)

// TaskValidator validates task input fields
type TaskValidator struct{}

// NewTaskValidator creates a new TaskValidator instance
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{}
}

// ValidateTitle checks that a title is present and within limits
func (v *TaskValidator) ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return errors.NewValidationError("task title cannot be empty", nil)
	}
	if len(trimmed) > titleMaxLength {
		return errors.NewValidationError("task title cannot exceed 255 characters", nil)
	}
	return nil
}

// GetValidTitle validates and returns the trimmed title
func (v *TaskValidator) GetValidTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if err := v.ValidateTitle(trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}

// ValidateTaskID checks that a task identifier is present
func (v *TaskValidator) ValidateTaskID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.NewValidationError("task id cannot be empty", nil)
	}
	return nil
}

// ParseStatus parses a user-supplied status value, accepting any casing
func ParseStatus(value string) (domain.Status, error) {
	status, err := domain.ParseStatus(strings.ToUpper(strings.TrimSpace(value)))
	if err != nil {
		return "", errors.NewInvalidInputError("status", value, "must be one of TODO, IN_PROGRESS, DONE")
	}
	return status, nil
}

// ParsePriority parses a user-supplied priority value, accepting any casing
func ParsePriority(value string) (domain.Priority, error) {
	priority, err := domain.ParsePriority(strings.ToUpper(strings.TrimSpace(value)))
	if err != nil {
		return "", errors.NewInvalidInputError("priority", value, "must be one of LOW, MEDIUM, HIGH")
	}
	return priority, nil
}

// ParseDueDate parses a user-supplied due date in YYYY-MM-DD form
func ParseDueDate(value string) (time.Time, error) {
	dueDate, err := time.Parse(dueDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("due date", value, "must be a date in YYYY-MM-DD form")
	}
	return dueDate, nil
}
