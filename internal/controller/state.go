package controller

import (
	"taskdeck/internal/domain"
)

// State is a single signal emitted by the controller. Each intent ends by
// producing exactly one of Loaded, OperationDone (always followed by a
// Loaded) or Failed.
type State interface {
	state()
}

// Loading is emitted when a foreground load begins. Background refreshes
// skip it to avoid a visible flicker.
type Loading struct{}

// Loaded carries the derived view after a successful intent.
type Loaded struct {
	View domain.View
}

// OperationDone acknowledges a successful mutating intent. It is always
// followed immediately by a Loaded carrying the refreshed view.
type OperationDone struct {
	Message string
}

// Failed carries the human-readable description of a failed intent.
// Failed is not terminal: any subsequent intent can transition out of it.
type Failed struct {
	Message string
}

func (Loading) state()       {}
func (Loaded) state()        {}
func (OperationDone) state() {}
func (Failed) state()        {}

// Listener receives controller states synchronously, in emission order.
type Listener func(State)
