package cli

import (
	"context"
	"strings"

	"taskdeck/internal/controller"
)

// SearchCommand handles the search command
type SearchCommand struct {
	controller *controller.Controller
	printer    *StatePrinter
}

// NewSearchCommand creates a new search command handler
func NewSearchCommand(app *App) *SearchCommand {
	return &SearchCommand{
		controller: app.controller,
		printer:    app.printer,
	}
}

// Execute primes the cache with a silent refresh, then runs the
// server-side search. Search is all-or-nothing: a remote failure is
// reported, never approximated locally.
func (c *SearchCommand) Execute(ctx context.Context, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))

	c.printer.Mute()
	err := c.controller.Refresh(ctx)
	c.printer.Unmute()
	if err != nil {
		return err
	}

	return c.controller.Search(ctx, query)
}
