package cli

import (
	"context"

	"taskdeck/internal/controller"
	"taskdeck/internal/domain"
	"taskdeck/internal/validation"
)

// FilterOptions carries the raw flag values for the filter command.
// Empty fields mean no constraint on that dimension.
type FilterOptions struct {
	Status   string
	Priority string
}

// FilterCommand handles the filter command
type FilterCommand struct {
	controller   *controller.Controller
	printer      *StatePrinter
	errorHandler *ErrorHandler
}

// NewFilterCommand creates a new filter command handler
func NewFilterCommand(app *App) *FilterCommand {
	return &FilterCommand{
		controller:   app.controller,
		printer:      app.printer,
		errorHandler: NewErrorHandler(),
	}
}

// Execute primes the cache with a silent refresh, then narrows the view
// by status and/or priority. A remote failure degrades to a local filter
// over the cache, so this command reports the last refreshed data rather
// than failing outright.
func (c *FilterCommand) Execute(ctx context.Context, opts FilterOptions) error {
	var status *domain.Status
	if opts.Status != "" {
		parsed, err := validation.ParseStatus(opts.Status)
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		status = &parsed
	}

	var priority *domain.Priority
	if opts.Priority != "" {
		parsed, err := validation.ParsePriority(opts.Priority)
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		priority = &parsed
	}

	c.printer.Mute()
	err := c.controller.Refresh(ctx)
	c.printer.Unmute()
	if err != nil {
		return err
	}

	return c.controller.Filter(ctx, status, priority)
}
