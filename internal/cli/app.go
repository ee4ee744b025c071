package cli

import (
	"io"
	"os"

	"taskdeck/internal/config"
	"taskdeck/internal/controller"
	"taskdeck/internal/session"
	"taskdeck/internal/validation"
)

// App wires the task list controller, the persisted session and the
// state printer together for the command handlers.
type App struct {
	controller *controller.Controller
	sessions   session.Store
	config     *config.Config
	validator  *validation.TaskValidator
	printer    *StatePrinter
	out        io.Writer
}

// NewApp creates a CLI application printing to stdout.
func NewApp(ctrl *controller.Controller, sessions session.Store, cfg *config.Config) *App {
	return NewAppWithOutput(ctrl, sessions, cfg, os.Stdout)
}

// NewAppWithOutput creates a CLI application printing to the given writer.
// The printer is subscribed to the controller's state stream, so every
// intent a command issues renders its states through it.
func NewAppWithOutput(ctrl *controller.Controller, sessions session.Store, cfg *config.Config, out io.Writer) *App {
	app := &App{
		controller: ctrl,
		sessions:   sessions,
		config:     cfg,
		validator:  validation.NewTaskValidator(),
		printer:    NewStatePrinter(out),
		out:        out,
	}
	ctrl.Subscribe(app.printer.Listen)
	return app
}
