package domain

import (
	"fmt"
	"time"
)

// Status represents the workflow state of a task.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ParseStatus parses a wire status value.
func ParseStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown status: %q", value)
	}
	return s, nil
}

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// String returns the wire representation of the priority.
func (p Priority) String() string {
	return string(p)
}

// IsValid checks if the priority is one of the known values.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority parses a wire priority value.
func ParsePriority(value string) (Priority, error) {
	p := Priority(value)
	if !p.IsValid() {
		return "", fmt.Errorf("unknown priority: %q", value)
	}
	return p, nil
}

// Task represents a task in the domain model.
// Tasks are immutable values: every mutation comes back from the remote
// service as a replacement record, identifiers are never generated locally.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     time.Time // date component only
	Creator     User
	Assignee    *User
	CreatedAt   time.Time
	UpdatedAt   time.Time
	IsOverdue   bool // derived server-side
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.ID != "" && t.Title != "" && t.Status.IsValid() && t.Priority.IsValid()
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
