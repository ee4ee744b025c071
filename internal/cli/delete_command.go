package cli

import (
	"context"

	"taskdeck/internal/controller"
	"taskdeck/internal/validation"
)

// DeleteCommand handles the rm command
type DeleteCommand struct {
	controller   *controller.Controller
	validator    *validation.TaskValidator
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		controller:   app.controller,
		validator:    app.validator,
		errorHandler: NewErrorHandler(),
	}
}

// Execute deletes the task remotely. The cache entry goes only after the
// remote delete is confirmed.
func (c *DeleteCommand) Execute(ctx context.Context, id string) error {
	if err := c.validator.ValidateTaskID(id); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	return c.controller.Delete(ctx, id)
}
