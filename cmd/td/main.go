package main

import (
	"fmt"
	"os"

	"taskdeck/internal/cli"
	"taskdeck/internal/config"
	"taskdeck/internal/controller"
	"taskdeck/internal/errors"
)

func main() {
	// Load configuration from defaults and environment
	cfg := config.NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Open the persisted session store; it doubles as the token source
	// for the remote gateway
	sessions, err := config.CreateSessionStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session store: %v\n", err)
		os.Exit(1)
	}
	defer sessions.Close()

	// Wire gateway and controller
	gw := config.CreateGateway(cfg, sessions)
	ctrl := controller.New(gw, controller.WithPageSize(cfg.API.PageSize))

	// Create app and run the root command
	app := cli.NewApp(ctrl, sessions, cfg)
	root := cli.NewRootCommand(app, cfg)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetUserMessage(err))
		os.Exit(1)
	}
}
