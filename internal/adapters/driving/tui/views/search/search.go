// Package search provides the provision search view for the TUI.
package search

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driving"
)

// ErrNoProvisionService indicates that no provision service was provided.
var ErrNoProvisionService = errors.New("provision service is required")

// View is the search view: query input, hit list and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     textinput.Model
	list      *list.HitList
	statusbar *status.Bar

	provisions driving.ProvisionService
	ctx        context.Context

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = typing a query, false = navigating hits
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, provisions driving.ProvisionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	ti := textinput.New()
	ti.Placeholder = "Search provisions, e.g. asset freeze"
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()

	return &View{
		styles:     s,
		keymap:     km,
		input:      ti,
		list:       list.NewHitList(s),
		statusbar:  status.NewBar(s, km),
		provisions: provisions,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		focusInput: true,
	}
}

// WithContext sets the context used for searches.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.focusInput {
		switch msg.Type {
		case tea.KeyEnter:
			return v, v.submit()
		case tea.KeyEsc:
			if v.list.Count() > 0 {
				v.blurInput()
			}
			return v, nil
		default:
			var cmd tea.Cmd
			v.input, cmd = v.input.Update(msg)
			return v, cmd
		}
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(msg.String(), v.keymap.Down):
		v.list.MoveDown()
	case keymap.Matches(msg.String(), v.keymap.NewSearch), msg.Type == tea.KeyEsc:
		v.focusInput = true
		return v, v.input.Focus()
	case keymap.Matches(msg.String(), v.keymap.Select):
		if hit := v.list.SelectedHit(); hit != nil {
			req := messages.ProvisionRequested{SourceID: hit.SourceID, ItemID: hit.ItemID}
			return v, func() tea.Msg { return req }
		}
	}
	return v, nil
}

// submit runs the current query. A blank query clears the results.
func (v *View) submit() tea.Cmd {
	query := strings.TrimSpace(v.input.Value())
	if query == "" {
		v.list.SetHits(nil)
		v.statusbar.Clear()
		return nil
	}

	v.err = nil
	v.statusbar.SetState(status.StateSearching)
	return v.performSearch(query)
}

func (v *View) performSearch(query string) tea.Cmd {
	provisions := v.provisions
	ctx := v.ctx
	return func() tea.Msg {
		if provisions == nil {
			return messages.ErrorOccurred{Err: ErrNoProvisionService}
		}
		hits, err := provisions.Search(ctx, domain.ProvisionSearch{
			Query: query,
			Limit: domain.MaxLimit,
		})
		return messages.SearchCompleted{Query: query, Hits: hits, Err: err}
	}
}

func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.list.SetHits(msg.Hits)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(msg.Hits))
	if len(msg.Hits) > 0 {
		v.blurInput()
	}
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

func (v *View) blurInput() {
	v.focusInput = false
	v.input.Blur()
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	label := v.styles.Title.Render("Search: ")
	field := v.styles.InputField.Render(v.input.View())

	sections := []string{
		v.styles.Title.Render("Sanctions Law"),
		"",
		//nolint:misspell // lipgloss.Center is the correct constant from the library
		lipgloss.JoinHorizontal(lipgloss.Center, label, field),
		"",
	}
	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}
	sections = append(sections, v.list.View(), "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	inputWidth := width - 14
	if inputWidth < 20 {
		inputWidth = 20
	}
	v.input.Width = inputWidth
	v.list.SetDimensions(width, height-9) // header, input box, status bar
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search query.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Hits returns the current search hits.
func (v *View) Hits() []domain.ProvisionHit {
	return v.list.Hits()
}

// SelectedHit returns the highlighted hit, or nil when there is none.
func (v *View) SelectedHit() *domain.ProvisionHit {
	return v.list.SelectedHit()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the query input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
