// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the provision search input and results view.
	ViewSearch ViewType = iota
	// ViewProvision shows one provision with its related provisions.
	ViewProvision
	// ViewSources lists the sources with their counts and freshness.
	ViewSources
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewProvision:
		return "provision"
	case ViewSources:
		return "sources"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SearchCompleted carries search hits back to the model.
type SearchCompleted struct {
	Query string
	Hits  []domain.ProvisionHit
	Err   error
}

// ProvisionRequested asks the app to open a provision.
type ProvisionRequested struct {
	SourceID string
	ItemID   string
}

// ProvisionLoaded carries a fetched provision. Detail is nil when the
// provision no longer exists.
type ProvisionLoaded struct {
	SourceID string
	ItemID   string
	Detail   *domain.ProvisionDetail
	Err      error
}

// SourcesLoaded carries the source listing.
type SourcesLoaded struct {
	Sources []domain.SourceSummary
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
