// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// linesPerHit is the height of one rendered hit: title, context, snippet.
const linesPerHit = 3

// HitList displays provision search hits in a navigable list.
type HitList struct {
	hits     []domain.ProvisionHit
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewHitList creates a new hit list component.
func NewHitList(s *styles.Styles) *HitList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &HitList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// View renders the hit list.
func (l *HitList) View() string {
	if len(l.hits) == 0 {
		return l.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(l.hits)+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(l.hits))), "")

	start, end := l.visibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, l.renderHit(i, &l.hits[i]))
	}

	return strings.Join(lines, "\n")
}

// visibleRange keeps the selected hit on screen.
func (l *HitList) visibleRange() (int, int) {
	visible := (l.height - 2) / linesPerHit
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.hits) {
		end = len(l.hits)
	}
	return start, end
}

func (l *HitList) renderHit(index int, hit *domain.ProvisionHit) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	title := truncate(hit.Title, l.width-4)
	if title == "" {
		title = hit.ItemID
	}

	var titleLine string
	if index == l.selected {
		titleLine = l.styles.Selected.Render(indicator + title)
	} else {
		titleLine = l.styles.Normal.Render(indicator + title)
	}

	parts := []string{hit.SourceID + "/" + hit.ItemID}
	if hit.Jurisdiction != "" {
		parts = append(parts, hit.Jurisdiction)
	}
	if hit.RegimeName != "" {
		parts = append(parts, hit.RegimeName)
	}
	contextLine := l.styles.Subtitle.Render("    " + truncate(strings.Join(parts, " · "), l.width-4))

	snippet := strings.Join(strings.Fields(hit.Snippet), " ")
	snippetLine := l.styles.Muted.Render("    " + truncate(snippet, l.width-4))

	return titleLine + "\n" + contextLine + "\n" + snippetLine
}

// truncate shortens s to max runes, marking the cut with "...".
func truncate(s string, max int) string {
	if max < 10 {
		max = 10
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// SetHits replaces the hits and selects the first.
func (l *HitList) SetHits(hits []domain.ProvisionHit) {
	l.hits = hits
	l.selected = 0
}

// Hits returns the current hits.
func (l *HitList) Hits() []domain.ProvisionHit {
	return l.hits
}

// Selected returns the index of the selected hit.
func (l *HitList) Selected() int {
	return l.selected
}

// SelectedHit returns the currently selected hit, or nil if none.
func (l *HitList) SelectedHit() *domain.ProvisionHit {
	if l.selected < 0 || l.selected >= len(l.hits) {
		return nil
	}
	return &l.hits[l.selected]
}

// MoveUp moves selection up.
func (l *HitList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *HitList) MoveDown() {
	if l.selected < len(l.hits)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *HitList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of hits.
func (l *HitList) Count() int {
	return len(l.hits)
}
