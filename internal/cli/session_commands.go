package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"taskdeck/internal/domain"
	"taskdeck/internal/errors"
	"taskdeck/internal/session"
)

// LoginCommand handles the login command
type LoginCommand struct {
	sessions     session.Store
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewLoginCommand creates a new login command handler
func NewLoginCommand(app *App) *LoginCommand {
	return &LoginCommand{
		sessions:     app.sessions,
		errorHandler: NewErrorHandler(),
		out:          app.out,
	}
}

// Execute persists the session, replacing any previous one.
func (c *LoginCommand) Execute(ctx context.Context, token string, user domain.User) error {
	if strings.TrimSpace(token) == "" {
		return errors.NewInvalidInputError("token", token, "cannot be empty")
	}
	if !user.IsValid() {
		return errors.NewInvalidInputError("user-id", user.ID, "cannot be empty")
	}

	if err := c.sessions.Save(ctx, user, token); err != nil {
		return c.errorHandler.Handle("save session", err)
	}

	fmt.Fprintf(c.out, "Logged in as %s\n", user.String())
	return nil
}

// LogoutCommand handles the logout command
type LogoutCommand struct {
	sessions     session.Store
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewLogoutCommand creates a new logout command handler
func NewLogoutCommand(app *App) *LogoutCommand {
	return &LogoutCommand{
		sessions:     app.sessions,
		errorHandler: NewErrorHandler(),
		out:          app.out,
	}
}

// Execute clears the persisted session. Logging out without a session is
// not an error.
func (c *LogoutCommand) Execute(ctx context.Context, args []string) error {
	if err := c.sessions.Clear(ctx); err != nil {
		return c.errorHandler.Handle("clear session", err)
	}

	fmt.Fprintln(c.out, "Logged out")
	return nil
}

// WhoamiCommand handles the whoami command
type WhoamiCommand struct {
	sessions     session.Store
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewWhoamiCommand creates a new whoami command handler
func NewWhoamiCommand(app *App) *WhoamiCommand {
	return &WhoamiCommand{
		sessions:     app.sessions,
		errorHandler: NewErrorHandler(),
		out:          app.out,
	}
}

// Execute prints the currently persisted user, if any.
func (c *WhoamiCommand) Execute(ctx context.Context, args []string) error {
	user, err := c.sessions.CurrentUser(ctx)
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Fprintln(c.out, "Not logged in")
			return nil
		}
		return c.errorHandler.Handle("read session", err)
	}

	if user.Email != "" {
		fmt.Fprintf(c.out, "%s <%s>\n", user.Name, user.Email)
	} else {
		fmt.Fprintln(c.out, user.String())
	}
	return nil
}
