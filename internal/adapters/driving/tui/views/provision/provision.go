// Package provision provides the provision detail view for the TUI.
package provision

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driving"
)

// ErrNoProvisionService indicates that no provision service was provided.
var ErrNoProvisionService = errors.New("provision service is required")

// chrome is the number of lines around the viewport: title, blank, footer.
const chrome = 4

// View shows one provision in a scrollable viewport.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	provisions driving.ProvisionService
	ctx        context.Context
	viewport   viewport.Model

	sourceID string
	itemID   string
	detail   *domain.ProvisionDetail
	loading  bool
	err      error
	width    int
	height   int
	ready    bool
}

// NewView creates a new provision view.
func NewView(s *styles.Styles, km *keymap.KeyMap, provisions driving.ProvisionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:     s,
		keymap:     km,
		provisions: provisions,
		ctx:        context.Background(),
		viewport:   viewport.New(80, 20-chrome),
		width:      80,
		height:     20,
	}
}

// WithContext sets the context used for lookups.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Open clears the view and returns the command that loads the provision.
func (v *View) Open(sourceID, itemID string) tea.Cmd {
	v.sourceID = sourceID
	v.itemID = itemID
	v.detail = nil
	v.err = nil
	v.loading = true
	v.viewport.SetContent("")
	v.viewport.GotoTop()

	provisions := v.provisions
	ctx := v.ctx
	return func() tea.Msg {
		if provisions == nil {
			return messages.ProvisionLoaded{SourceID: sourceID, ItemID: itemID, Err: ErrNoProvisionService}
		}
		detail, err := provisions.Get(ctx, domain.ProvisionLookup{
			SourceID:       sourceID,
			ItemID:         itemID,
			IncludeRelated: true,
		})
		return messages.ProvisionLoaded{SourceID: sourceID, ItemID: itemID, Detail: detail, Err: err}
	}
}

// Update handles messages for the provision view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ProvisionLoaded:
		// Drop replies for a provision the user already left.
		if msg.SourceID != v.sourceID || msg.ItemID != v.itemID {
			return v, nil
		}
		v.loading = false
		v.detail = msg.Detail
		v.err = msg.Err
		v.viewport.SetContent(v.renderBody())
		v.viewport.GotoTop()
		return v, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), v.keymap.Back) {
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewSearch} }
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the provision view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	title := v.styles.Title.Render(v.sourceID + " / " + v.itemID)
	if v.detail != nil {
		title = v.styles.Title.Render(v.detail.Title)
	}

	var body string
	switch {
	case v.loading:
		body = v.styles.Muted.Render("Loading...")
	case v.err != nil:
		body = v.styles.Error.Render("Error: " + v.err.Error())
	case v.detail == nil:
		body = v.styles.Muted.Render("Provision not found")
	default:
		body = v.viewport.View()
	}

	footer := v.styles.Help.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll | esc back", v.viewport.ScrollPercent()*100))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, footer)
}

// renderBody formats the loaded provision for the viewport.
func (v *View) renderBody() string {
	d := v.detail
	if d == nil {
		return ""
	}

	var b strings.Builder
	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(v.styles.Label.Render(label))
		b.WriteString(v.styles.Normal.Render(value))
		b.WriteString("\n")
	}

	field("Source", fmt.Sprintf("%s (%s)", d.SourceName, d.SourceID))
	field("Item", d.ItemID)
	field("Kind", d.Kind)
	if d.RegimeID != "" {
		field("Regime", strings.TrimSpace(d.RegimeName+" ("+d.RegimeID+")"))
	}
	field("Jurisdiction", d.Jurisdiction)
	field("Parent", d.Parent)
	field("Issued", d.IssuedDate)
	field("Topics", strings.Join(d.Topics, ", "))
	field("URL", d.URL)

	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Width(v.contentWidth()).Render(d.Text))
	b.WriteString("\n")

	if len(d.Related) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Related (%d)", len(d.Related))))
		b.WriteString("\n")
		for _, r := range d.Related {
			b.WriteString(v.styles.Normal.Render("  " + r.Title))
			b.WriteString(v.styles.Muted.Render("  " + r.SourceID + "/" + r.ItemID))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (v *View) contentWidth() int {
	if v.width < 20 {
		return 20
	}
	return v.width
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.viewport.Width = width
	v.viewport.Height = max(height-chrome, 1)
	if v.detail != nil {
		v.viewport.SetContent(v.renderBody())
	}
}

// Detail returns the loaded provision, or nil.
func (v *View) Detail() *domain.ProvisionDetail {
	return v.detail
}

// Loading reports whether a lookup is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last lookup error.
func (v *View) Err() error {
	return v.err
}

// YOffset returns the viewport scroll position.
func (v *View) YOffset() int {
	return v.viewport.YOffset
}
