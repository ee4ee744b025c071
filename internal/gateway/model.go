package gateway

import (
	"fmt"
	"time"

	"taskdeck/internal/domain"
)

// dueDateLayout is the wire format for due dates: a calendar date with no
// time component.
const dueDateLayout = "2006-01-02"

type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (p userPayload) toDomain() domain.User {
	return domain.User{
		ID:    p.ID,
		Name:  p.Name,
		Email: p.Email,
	}
}

type taskPayload struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Priority    string       `json:"priority"`
	DueDate     string       `json:"due_date"`
	Creator     userPayload  `json:"creator"`
	Assignee    *userPayload `json:"assignee,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	IsOverdue   bool         `json:"is_overdue"`
}

// toDomain converts a wire task to the domain model. Unknown enum values
// and unparseable dates are payload errors, reported like any other remote
// failure by the caller.
func (p taskPayload) toDomain() (domain.Task, error) {
	status, err := domain.ParseStatus(p.Status)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %s: %w", p.ID, err)
	}

	priority, err := domain.ParsePriority(p.Priority)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %s: %w", p.ID, err)
	}

	dueDate, err := time.Parse(dueDateLayout, p.DueDate)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %s: invalid due date %q", p.ID, p.DueDate)
	}

	task := domain.Task{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
		Creator:     p.Creator.toDomain(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		IsOverdue:   p.IsOverdue,
	}

	if p.Assignee != nil {
		assignee := p.Assignee.toDomain()
		task.Assignee = &assignee
	}

	return task, nil
}

func tasksToDomain(payloads []taskPayload) ([]domain.Task, error) {
	tasks := make([]domain.Task, len(payloads))
	for i, p := range payloads {
		task, err := p.toDomain()
		if err != nil {
			return nil, err
		}
		tasks[i] = task
	}
	return tasks, nil
}

type taskListResponse struct {
	Tasks []taskPayload `json:"tasks"`
}

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     string  `json:"due_date"`
	Priority    string  `json:"priority"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
}

type updateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
}

func newCreateTaskRequest(in CreateTaskInput) createTaskRequest {
	return createTaskRequest{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate.Format(dueDateLayout),
		Priority:    in.Priority.String(),
		AssigneeID:  in.AssigneeID,
	}
}

func newUpdateTaskRequest(in UpdateTaskInput) updateTaskRequest {
	req := updateTaskRequest{
		Title:       in.Title,
		Description: in.Description,
		AssigneeID:  in.AssigneeID,
	}
	if in.Status != nil {
		status := in.Status.String()
		req.Status = &status
	}
	if in.DueDate != nil {
		dueDate := in.DueDate.Format(dueDateLayout)
		req.DueDate = &dueDate
	}
	if in.Priority != nil {
		priority := in.Priority.String()
		req.Priority = &priority
	}
	return req
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}
