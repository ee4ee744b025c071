package config

import (
	"fmt"
	"net/http"
	"os"

	"taskdeck/internal/gateway"
	"taskdeck/internal/session"
)

// CreateSessionStore opens the persisted-session store at the configured
// path, creating the directory if needed.
func CreateSessionStore(config *Config) (session.Store, error) {
	if err := os.MkdirAll(config.Session.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	store, err := session.New(config.GetSessionPath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	return store, nil
}

// CreateTestSessionStore creates an in-memory session store for testing
func CreateTestSessionStore() (session.Store, error) {
	store, err := session.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test session store: %w", err)
	}

	return store, nil
}

// CreateGateway builds the remote task gateway from the configuration,
// authenticated through the given token source.
func CreateGateway(config *Config, tokens gateway.TokenSource) gateway.TaskGateway {
	httpClient := &http.Client{Timeout: config.API.Timeout}
	return gateway.NewClient(config.API.BaseURL, tokens, httpClient)
}
