package cli

import (
	"context"

	"taskdeck/internal/controller"
	"taskdeck/internal/domain"
	"taskdeck/internal/validation"
)

// StatusCommand handles the status and done commands
type StatusCommand struct {
	controller   *controller.Controller
	validator    *validation.TaskValidator
	errorHandler *ErrorHandler
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{
		controller:   app.controller,
		validator:    app.validator,
		errorHandler: NewErrorHandler(),
	}
}

// Execute moves the task to the given workflow state.
func (c *StatusCommand) Execute(ctx context.Context, id string, statusValue string) error {
	if err := c.validator.ValidateTaskID(id); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	status, err := validation.ParseStatus(statusValue)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	return c.controller.UpdateStatus(ctx, id, status)
}

// MarkDone moves the task straight to DONE, for the done shorthand.
func (c *StatusCommand) MarkDone(ctx context.Context, id string) error {
	if err := c.validator.ValidateTaskID(id); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	return c.controller.UpdateStatus(ctx, id, domain.StatusDone)
}
