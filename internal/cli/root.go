package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskdeck/internal/config"
	"taskdeck/internal/domain"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    app,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "td",
		Short: "A command-line client for the remote task service",
		Long: `Taskdeck (td) is a command-line client for a shared remote task service.

It keeps a session-scoped cache of the task list: reads come from the
cache, every change goes to the remote service first and is mirrored
into the cache only after the service confirms it.

EXAMPLES:
  td login <token> --user-id u1 --name "Alice"   # Persist credentials locally
  td list                                        # Load and show the task list
  td add "Fix login bug" --due 2026-09-01        # Create a task
  td done t42                                    # Mark a task as done
  td status t42 in_progress                      # Move a task to another state
  td edit t42 --priority high                    # Change task fields
  td rm t42                                      # Delete a task
  td search "login"                              # Server-side free-text search
  td filter --status todo --priority high        # Narrow by status/priority
  td get t42                                     # Show one task in detail
  td serve                                       # Serve a local read-only web view

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Remote Service Configuration:
    TASKDECK_API_URL                       Task service base URL (default: http://localhost:8080/api/v1)
    TASKDECK_API_TIMEOUT                   Request timeout (default: 30s)
    TASKDECK_API_PAGE_SIZE                 Page size for list requests (default: 50)

  Session Configuration:
    TASKDECK_SESSION_DIR                   Session directory (default: ~/.taskdeck)
    TASKDECK_SESSION_FILENAME              Session filename (default: session.db)

  Web View Configuration:
    TASKDECK_WEB_ADDR                      Listen address for td serve (default: 127.0.0.1:9091)

  Application Configuration:
    TASKDECK_APP_TIMEOUT                   Command timeout (default: 60s)
    TASKDECK_APP_VERBOSE                   Enable verbose output (default: false)

GETTING HELP:
  td [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("api-url", "", "Task service base URL (overrides TASKDECK_API_URL)")
	flags.Duration("api-timeout", 0, "Request timeout (overrides TASKDECK_API_TIMEOUT)")
	flags.Int("page-size", 0, "Page size for list requests (overrides TASKDECK_API_PAGE_SIZE)")
	flags.String("web-addr", "", "Listen address for td serve (overrides TASKDECK_WEB_ADDR)")
	flags.Duration("app-timeout", 0, "Command timeout (overrides TASKDECK_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TASKDECK_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Login command
	loginCmd := &cobra.Command{
		Use:   "login [token]",
		Short: "Persist credentials for the remote task service",
		Long: `Store an access token and user identity in the local session store.
The token is attached as a bearer token to every remote call.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			userID, _ := cmd.Flags().GetString("user-id")
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")

			user := domain.User{ID: userID, Name: name, Email: email}
			return NewLoginCommand(r.app).Execute(ctx, args[0], user)
		},
	}
	loginCmd.Flags().String("user-id", "", "User identifier (required)")
	loginCmd.Flags().String("name", "", "Display name")
	loginCmd.Flags().String("email", "", "Email address")

	// Logout command
	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewLogoutCommand(r.app).Execute(ctx, args)
		},
	}

	// Whoami command
	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently persisted user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewWhoamiCommand(r.app).Execute(ctx, args)
		},
	}

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Load and show the task list",
		Long:  "Fetch the full task list from the remote service and show it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewListCommand(r.app).Execute(ctx, args)
		},
	}

	// Add command
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a new task",
		Long: `Create a task on the remote service. The identifier and workflow
state are assigned by the service; the created task is shown once the
service confirms it.

Examples:
  td add "Fix login bug" --due 2026-09-01
  td add "Ship release" --due 2026-09-15 --priority high --assignee u7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			opts := AddOptions{Title: args[0]}
			opts.Description, _ = cmd.Flags().GetString("desc")
			opts.DueDate, _ = cmd.Flags().GetString("due")
			opts.Priority, _ = cmd.Flags().GetString("priority")
			opts.AssigneeID, _ = cmd.Flags().GetString("assignee")

			return NewAddCommand(r.app).Execute(ctx, opts)
		},
	}
	addCmd.Flags().String("desc", "", "Task description")
	addCmd.Flags().String("due", "", "Due date in YYYY-MM-DD form (required)")
	addCmd.Flags().String("priority", "", "Priority: low, medium or high (default medium)")
	addCmd.Flags().String("assignee", "", "Assignee user identifier")

	// Edit command
	editCmd := &cobra.Command{
		Use:   "edit [task id]",
		Short: "Change fields of an existing task",
		Long: `Apply a partial update to a task. Only the fields given as flags are
sent; everything else stays unmodified.

Examples:
  td edit t42 --title "Fix login redirect"
  td edit t42 --priority high --due 2026-09-01`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			var opts EditOptions
			opts.Title = changedString(cmd, "title")
			opts.Description = changedString(cmd, "desc")
			opts.Status = changedString(cmd, "status")
			opts.DueDate = changedString(cmd, "due")
			opts.Priority = changedString(cmd, "priority")
			opts.AssigneeID = changedString(cmd, "assignee")

			return NewEditCommand(r.app).Execute(ctx, args[0], opts)
		},
	}
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().String("desc", "", "New description")
	editCmd.Flags().String("status", "", "New status: todo, in_progress or done")
	editCmd.Flags().String("due", "", "New due date in YYYY-MM-DD form")
	editCmd.Flags().String("priority", "", "New priority: low, medium or high")
	editCmd.Flags().String("assignee", "", "New assignee user identifier")

	// Done command
	doneCmd := &cobra.Command{
		Use:   "done [task id]",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewStatusCommand(r.app).MarkDone(ctx, args[0])
		},
	}

	// Status command
	statusCmd := &cobra.Command{
		Use:   "status [task id] [status]",
		Short: "Move a task to another workflow state",
		Long: `Move a task to the given workflow state: todo, in_progress or done.

Example:
  td status t42 in_progress`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewStatusCommand(r.app).Execute(ctx, args[0], args[1])
		},
	}

	// Remove command
	rmCmd := &cobra.Command{
		Use:   "rm [task id]",
		Short: "Delete a task",
		Long: `Delete a task on the remote service. The local copy is removed only
after the service confirms the delete.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewDeleteCommand(r.app).Execute(ctx, args[0])
		},
	}

	// Search command
	searchCmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Server-side free-text search",
		Long: `Run a free-text search on the remote service and show the matching
tasks. An empty query shows the full list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewSearchCommand(r.app).Execute(ctx, args)
		},
	}

	// Filter command
	filterCmd := &cobra.Command{
		Use:   "filter",
		Short: "Narrow the task list by status and/or priority",
		Long: `Narrow the task list by status and/or priority. The remote service is
asked first; if it is unreachable the filter is applied locally to the
last fetched list.

Examples:
  td filter --status todo
  td filter --status in_progress --priority high`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			var opts FilterOptions
			opts.Status, _ = cmd.Flags().GetString("status")
			opts.Priority, _ = cmd.Flags().GetString("priority")

			return NewFilterCommand(r.app).Execute(ctx, opts)
		},
	}
	filterCmd.Flags().String("status", "", "Status: todo, in_progress or done")
	filterCmd.Flags().String("priority", "", "Priority: low, medium or high")

	// Get command
	getCmd := &cobra.Command{
		Use:   "get [task id]",
		Short: "Show one task in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewGetCommand(r.app).Execute(ctx, args[0])
		},
	}

	// Serve command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a local read-only web view of the task list",
		Long: `Load the task list and serve it over HTTP, together with Prometheus
metrics on /metrics. The view is read-only; changes still go through
the other commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Serving runs until interrupted; no command timeout applies.
			refresh, _ := cmd.Flags().GetDuration("refresh")
			return NewServeCommand(r.app).Execute(cmd.Context(), r.config.Web.Addr, refresh)
		},
	}
	serveCmd.Flags().Duration("refresh", 0, "Background refresh interval (0 disables)")

	r.cmd.AddCommand(
		loginCmd,
		logoutCmd,
		whoamiCmd,
		listCmd,
		addCmd,
		editCmd,
		doneCmd,
		statusCmd,
		rmCmd,
		searchCmd,
		filterCmd,
		getCmd,
		serveCmd,
	)
}

// commandContext returns a context bounded by the application timeout.
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if apiURL, _ := flags.GetString("api-url"); apiURL != "" {
		r.config.API.BaseURL = apiURL
	}
	if apiTimeout, _ := flags.GetDuration("api-timeout"); apiTimeout > 0 {
		r.config.API.Timeout = apiTimeout
	}
	if pageSize, _ := flags.GetInt("page-size"); pageSize > 0 {
		r.config.API.PageSize = pageSize
	}
	if webAddr, _ := flags.GetString("web-addr"); webAddr != "" {
		r.config.Web.Addr = webAddr
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}

// changedString returns the flag value if it was set on the command line.
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetString(name)
	return &value
}
