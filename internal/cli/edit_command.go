package cli

import (
	"context"

	"taskdeck/internal/controller"
	"taskdeck/internal/errors"
	"taskdeck/internal/gateway"
	"taskdeck/internal/validation"
)

// EditOptions carries the raw flag values for the edit command. Nil
// fields were not given on the command line and stay unmodified.
type EditOptions struct {
	Title       *string
	Description *string
	Status      *string
	DueDate     *string
	Priority    *string
	AssigneeID  *string
}

// EditCommand handles the edit command
type EditCommand struct {
	controller   *controller.Controller
	validator    *validation.TaskValidator
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		controller:   app.controller,
		validator:    app.validator,
		errorHandler: NewErrorHandler(),
	}
}

// Execute validates the given fields locally, then issues a partial
// update intent carrying only those fields.
func (c *EditCommand) Execute(ctx context.Context, id string, opts EditOptions) error {
	if err := c.validator.ValidateTaskID(id); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	in, err := c.buildUpdate(opts)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	if in.IsEmpty() {
		return errors.NewInvalidInputError("edit", id, "at least one field must be provided")
	}

	return c.controller.Update(ctx, id, in)
}

func (c *EditCommand) buildUpdate(opts EditOptions) (gateway.UpdateTaskInput, error) {
	var in gateway.UpdateTaskInput

	if opts.Title != nil {
		title, err := c.validator.GetValidTitle(*opts.Title)
		if err != nil {
			return in, err
		}
		in.Title = &title
	}
	if opts.Description != nil {
		in.Description = opts.Description
	}
	if opts.Status != nil {
		status, err := validation.ParseStatus(*opts.Status)
		if err != nil {
			return in, err
		}
		in.Status = &status
	}
	if opts.DueDate != nil {
		dueDate, err := validation.ParseDueDate(*opts.DueDate)
		if err != nil {
			return in, err
		}
		in.DueDate = &dueDate
	}
	if opts.Priority != nil {
		priority, err := validation.ParsePriority(*opts.Priority)
		if err != nil {
			return in, err
		}
		in.Priority = &priority
	}
	if opts.AssigneeID != nil {
		in.AssigneeID = opts.AssigneeID
	}

	return in, nil
}
