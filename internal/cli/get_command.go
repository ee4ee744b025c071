package cli

import (
	"context"

	"taskdeck/internal/controller"
	"taskdeck/internal/errors"
	"taskdeck/internal/validation"
)

// GetCommand handles the get command
type GetCommand struct {
	controller   *controller.Controller
	validator    *validation.TaskValidator
	printer      *StatePrinter
	errorHandler *ErrorHandler
}

// NewGetCommand creates a new get command handler
func NewGetCommand(app *App) *GetCommand {
	return &GetCommand{
		controller:   app.controller,
		validator:    app.validator,
		printer:      app.printer,
		errorHandler: NewErrorHandler(),
	}
}

// Execute primes the cache with a silent refresh, then prints the cached
// task in long form.
func (c *GetCommand) Execute(ctx context.Context, id string) error {
	if err := c.validator.ValidateTaskID(id); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	c.printer.Mute()
	err := c.controller.Refresh(ctx)
	c.printer.Unmute()
	if err != nil {
		return err
	}

	task, found := c.controller.GetByID(id)
	if !found {
		return c.errorHandler.HandleSimple(errors.NewNotFoundError("task", id))
	}

	c.printer.PrintTask(task)
	return nil
}
