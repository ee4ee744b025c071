package gateway

import (
	"context"
	"time"

	"taskdeck/internal/domain"
)

// ListOptions contains the optional narrowing and paging parameters for
// fetching tasks. A nil Status or Priority means no constraint on that
// dimension.
type ListOptions struct {
	Status   *domain.Status
	Priority *domain.Priority
	Page     int
	PageSize int
}

// CreateTaskInput carries the fields for creating a task. The identifier,
// status, timestamps and overdue flag are assigned by the remote service.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     time.Time
	Priority    domain.Priority
	AssigneeID  *string
}

// UpdateTaskInput carries a partial update. Only non-nil fields are sent;
// absent fields are left unmodified server-side.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.Status
	DueDate     *time.Time
	Priority    *domain.Priority
	AssigneeID  *string
}

// IsEmpty reports whether the update carries no fields at all.
func (in UpdateTaskInput) IsEmpty() bool {
	return in.Title == nil && in.Description == nil && in.Status == nil &&
		in.DueDate == nil && in.Priority == nil && in.AssigneeID == nil
}

// TokenSource provides the bearer token for authenticated calls. The
// gateway does not interpret tokens; it only attaches them.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource returning a fixed token. Useful for tests
// and one-off scripted use.
type StaticToken string

// Token returns the fixed token.
func (t StaticToken) Token(ctx context.Context) (string, error) {
	return string(t), nil
}

// TaskGateway defines the contract against the remote task API. Every
// method fails with a remote error on network problems, non-success
// responses or malformed payloads; callers treat all of these uniformly.
type TaskGateway interface {
	// FetchAll lists tasks, optionally narrowed by status and/or priority.
	FetchAll(ctx context.Context, opts ListOptions) ([]domain.Task, error)

	// Create creates a task and returns the server-assigned record.
	Create(ctx context.Context, in CreateTaskInput) (*domain.Task, error)

	// Update applies a partial update and returns the replacement record.
	Update(ctx context.Context, id string, in UpdateTaskInput) (*domain.Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, id string) error

	// Search runs a server-side free-text search.
	Search(ctx context.Context, query string, page, pageSize int) ([]domain.Task, error)
}
