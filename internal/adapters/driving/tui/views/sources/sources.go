// Package sources provides the sources view for the TUI.
package sources

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driving"
)

// ErrNoSourceService indicates that no source service was provided.
var ErrNoSourceService = errors.New("source service is required")

// detailLoaded carries the expanded record of one source.
type detailLoaded struct {
	SourceID string
	Detail   *domain.SourceDetail
	Err      error
}

// View lists sources with their record counts and freshness.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.SourceService
	ctx     context.Context

	sources  []domain.SourceSummary
	detail   *domain.SourceDetail
	selected int
	width    int
	height   int
	err      error
	loading  bool
}

// NewView creates a new sources view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.SourceService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:  s,
		keymap:  km,
		service: service,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context used for loading.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Load returns the command that fetches the source listing.
func (v *View) Load() tea.Cmd {
	v.loading = true
	service := v.service
	ctx := v.ctx
	return func() tea.Msg {
		if service == nil {
			return messages.SourcesLoaded{Err: ErrNoSourceService}
		}
		listing, err := service.List(ctx, domain.SourceQuery{})
		if err != nil {
			return messages.SourcesLoaded{Err: err}
		}
		return messages.SourcesLoaded{Sources: listing.Sources}
	}
}

func (v *View) loadDetail(id string) tea.Cmd {
	service := v.service
	ctx := v.ctx
	return func() tea.Msg {
		if service == nil {
			return detailLoaded{SourceID: id, Err: ErrNoSourceService}
		}
		listing, err := service.List(ctx, domain.SourceQuery{SourceID: id, IncludeSamples: true})
		if err != nil {
			return detailLoaded{SourceID: id, Err: err}
		}
		return detailLoaded{SourceID: id, Detail: listing.Detail}
	}
}

// Update handles messages for the sources view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.SourcesLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.sources = msg.Sources
			v.detail = nil
			if v.selected >= len(v.sources) {
				v.selected = 0
			}
		}

	case detailLoaded:
		if sel := v.SelectedSource(); sel == nil || sel.ID != msg.SourceID {
			return v, nil
		}
		v.err = msg.Err
		v.detail = msg.Detail

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch k := msg.String(); {
	case keymap.Matches(k, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
			v.detail = nil
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.selected < len(v.sources)-1 {
			v.selected++
			v.detail = nil
		}
	case keymap.Matches(k, v.keymap.Select):
		if sel := v.SelectedSource(); sel != nil {
			return v, v.loadDetail(sel.ID)
		}
	case keymap.Matches(k, v.keymap.Reload):
		return v, v.Load()
	case keymap.Matches(k, v.keymap.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewSearch} }
	}
	return v, nil
}

// View renders the sources view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Sources"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading sources..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case len(v.sources) == 0:
		b.WriteString(v.styles.Muted.Render("No sources loaded. Run 'sanctions-law build' first."))
	default:
		for i := range v.sources {
			b.WriteString(v.renderSource(i, &v.sources[i]))
			b.WriteString("\n")
		}
		if v.detail != nil {
			b.WriteString("\n")
			b.WriteString(v.renderDetail())
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[enter] details  [r] reload  [esc] back  [q] quit"))
	return b.String()
}

// renderSource renders one line: name, record count, freshness.
func (v *View) renderSource(index int, s *domain.SourceSummary) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	name := s.Name
	if name == "" {
		name = s.ID
	}
	nameWidth := max(v.width-36, 10)
	if r := []rune(name); len(r) > nameWidth {
		name = string(r[:nameWidth-3]) + "..."
	}

	status := s.FreshnessStatus
	if status == "" {
		status = domain.FreshnessPlanned
	}

	line := fmt.Sprintf("%s%-*s %6d records  %-8s", indicator, nameWidth, name, s.RecordCount(), s.PriorityTier)
	if index == v.selected {
		return v.styles.Selected.Render(line) + " " + v.styles.Freshness(status).Render(string(status))
	}
	return v.styles.Normal.Render(line) + " " + v.styles.Freshness(status).Render(string(status))
}

func (v *View) renderDetail() string {
	d := v.detail
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(d.Name))
	b.WriteString("\n")
	for _, f := range [][2]string{
		{"Authority", d.Authority},
		{"Portal", d.OfficialPortal},
		{"Frequency", string(d.UpdateFrequency)},
		{"Estimate", d.RecordsEstimate},
		{"Verified", d.LastVerified},
		{"Coverage", d.CoverageNote},
	} {
		if f[1] == "" {
			continue
		}
		b.WriteString(v.styles.Label.Render(f[0]))
		b.WriteString(v.styles.Normal.Render(f[1]))
		b.WriteString("\n")
	}
	if len(d.SampleItems) > 0 {
		b.WriteString(v.styles.Label.Render("Samples"))
		b.WriteString("\n")
		for _, p := range d.SampleItems {
			b.WriteString(v.styles.Muted.Render("  " + p.ItemID + "  " + p.Title))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Sources returns the loaded sources.
func (v *View) Sources() []domain.SourceSummary {
	return v.sources
}

// SelectedSource returns the highlighted source, or nil.
func (v *View) SelectedSource() *domain.SourceSummary {
	if v.selected < 0 || v.selected >= len(v.sources) {
		return nil
	}
	return &v.sources[v.selected]
}

// Detail returns the expanded source, or nil.
func (v *View) Detail() *domain.SourceDetail {
	return v.detail
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
