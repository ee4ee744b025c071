package cli

import (
	"context"

	"taskdeck/internal/controller"
)

// ListCommand handles the list command
type ListCommand struct {
	controller *controller.Controller
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{controller: app.controller}
}

// Execute loads the full task list. The subscribed printer renders the
// Loading and Loaded states.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	return c.controller.Load(ctx)
}
