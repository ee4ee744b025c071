package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"taskdeck/internal/controller"
	"taskdeck/internal/logging"
	"taskdeck/internal/web"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	controller *controller.Controller
	printer    *StatePrinter
	out        io.Writer
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{
		controller: app.controller,
		printer:    app.printer,
		out:        app.out,
	}
}

// Execute loads the task list and serves the local read-only web view
// until the context is cancelled. With a positive refresh interval the
// cache is refreshed in the background; refresh failures keep the stale
// cache and the view stays available.
func (c *ServeCommand) Execute(ctx context.Context, addr string, refreshInterval time.Duration) error {
	c.printer.Mute()
	if err := c.controller.Load(ctx); err != nil {
		logging.Debugf("serve: initial load failed, serving empty cache: %v\n", err)
	}
	c.printer.Unmute()

	if refreshInterval > 0 {
		go c.refreshLoop(ctx, refreshInterval)
	}

	httpServer := &http.Server{
		Addr:    addr,
		Handler: web.NewServer(c.controller).Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(c.out, "Serving task view on http://%s\n", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (c *ServeCommand) refreshLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.printer.Mute()
			if err := c.controller.Refresh(ctx); err != nil {
				logging.Debugf("serve: background refresh failed: %v\n", err)
			}
			c.printer.Unmute()
		}
	}
}
