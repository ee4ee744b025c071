package cli

import (
	"context"

	"taskdeck/internal/controller"
	"taskdeck/internal/domain"
	"taskdeck/internal/gateway"
	"taskdeck/internal/validation"
)

// AddOptions carries the raw flag values for the add command.
type AddOptions struct {
	Title       string
	Description string
	DueDate     string
	Priority    string
	AssigneeID  string
}

// AddCommand handles the add command
type AddCommand struct {
	controller   *controller.Controller
	validator    *validation.TaskValidator
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		controller:   app.controller,
		validator:    app.validator,
		errorHandler: NewErrorHandler(),
	}
}

// Execute validates the input locally, then issues the create intent.
func (c *AddCommand) Execute(ctx context.Context, opts AddOptions) error {
	title, err := c.validator.GetValidTitle(opts.Title)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	dueDate, err := validation.ParseDueDate(opts.DueDate)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	priority := domain.PriorityMedium
	if opts.Priority != "" {
		priority, err = validation.ParsePriority(opts.Priority)
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
	}

	in := gateway.CreateTaskInput{
		Title:       title,
		Description: opts.Description,
		DueDate:     dueDate,
		Priority:    priority,
	}
	if opts.AssigneeID != "" {
		in.AssigneeID = &opts.AssigneeID
	}

	return c.controller.Create(ctx, in)
}
