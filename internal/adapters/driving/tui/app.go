package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/views/provision"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/views/sources"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	searchView    *search.View
	provisionView *provision.View
	sourcesView   *sources.View

	// currentView tracks which view is active; previousView is where
	// help returns to.
	currentView  messages.ViewType
	previousView messages.ViewType

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		searchView:    search.NewView(s, km, ports.Provisions),
		provisionView: provision.NewView(s, km, ports.Provisions),
		sourcesView:   sources.NewView(s, km, ports.Sources),
		currentView:   messages.ViewSearch,
	}, nil
}

// WithContext sets the context passed to every service call.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.provisionView.WithContext(ctx)
	a.sourcesView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("sanctions-law"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.provisionView.SetDimensions(msg.Width, msg.Height)
		a.sourcesView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.ProvisionRequested:
		a.currentView = messages.ViewProvision
		return a, a.provisionView.Open(msg.SourceID, msg.ItemID)

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.ProvisionLoaded:
		a.provisionView, cmd = a.provisionView.Update(msg)
		return a, cmd

	case messages.SourcesLoaded:
		a.sourcesView, cmd = a.sourcesView.Update(msg)
		return a, cmd
	}

	return a, a.forward(msg)
}

// handleKeyMsg applies the global bindings, then hands the key to the
// active view. While the query input has focus only ctrl+c is global.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if k == "ctrl+c" {
		return a, tea.Quit
	}

	if a.currentView == messages.ViewHelp {
		if keymap.Matches(k, a.keymap.Quit) {
			return a, tea.Quit
		}
		a.currentView = a.previousView
		return a, nil
	}

	typing := a.currentView == messages.ViewSearch && a.searchView.InputFocused()
	switch {
	case keymap.Matches(k, a.keymap.Sources) && a.currentView != messages.ViewSources:
		return a, a.switchTo(messages.ViewSources)
	case typing:
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(k, a.keymap.Help):
		a.previousView = a.currentView
		a.currentView = messages.ViewHelp
		return a, nil
	}

	return a, a.forward(msg)
}

// switchTo activates view and returns its start-up command.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view
	if view == messages.ViewSources {
		return a.sourcesView.Load()
	}
	return nil
}

// forward passes msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewProvision:
		a.provisionView, cmd = a.provisionView.Update(msg)
	case messages.ViewSources:
		a.sourcesView, cmd = a.sourcesView.Update(msg)
	case messages.ViewHelp:
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewProvision:
		return a.provisionView.View()
	case messages.ViewSources:
		return a.sourcesView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.searchView.View()
	}
}

// viewHelp renders the keybindings grouped as in the keymap.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n")
	for _, group := range a.keymap.FullHelp() {
		b.WriteString("\n")
		for _, binding := range group {
			b.WriteString(helpLine(binding))
		}
	}
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("Press any key to return."))
	return b.String()
}

func helpLine(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("  %-12s %s\n", h.Key, h.Desc)
}

// Run starts the TUI and blocks until the user quits or the context ends.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready returns whether the app has received its window size.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.Update(tea.WindowSizeMsg{Width: width, Height: height})
}
