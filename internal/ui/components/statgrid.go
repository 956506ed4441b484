package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opsdeck/opsdeck/internal/ui"
)

// StatGrid lays out stat cards in rows of a fixed column count.
type StatGrid struct {
	BaseComponent
	cards   []ui.Renderable
	columns int
	gap     int
}

// NewStatGrid creates a grid with the given cards and a default of four
// columns.
func NewStatGrid(cards ...ui.Renderable) *StatGrid {
	return &StatGrid{
		BaseComponent: NewBaseComponent(),
		cards:         cards,
		columns:       4,
		gap:           1,
	}
}

// WithColumns sets the number of columns. Values below one are ignored.
func (g *StatGrid) WithColumns(columns int) *StatGrid {
	if columns >= 1 {
		g.columns = columns
	}
	return g
}

// WithGap sets the horizontal gap between cards.
func (g *StatGrid) WithGap(gap int) *StatGrid {
	if gap >= 0 {
		g.gap = gap
	}
	return g
}

// Add appends cards to the grid.
func (g *StatGrid) Add(cards ...ui.Renderable) *StatGrid {
	g.cards = append(g.cards, cards...)
	return g
}

// View renders the grid with the shared theme.
func (g *StatGrid) View() string {
	return g.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the grid row by row.
func (g *StatGrid) ViewWithContext(ctx RenderContext) string {
	if len(g.cards) == 0 {
		return ""
	}

	spacer := lipgloss.NewStyle().Width(g.gap).Render("")
	rows := make([]string, 0, (len(g.cards)+g.columns-1)/g.columns)

	for start := 0; start < len(g.cards); start += g.columns {
		end := start + g.columns
		if end > len(g.cards) {
			end = len(g.cards)
		}

		cells := make([]string, 0, 2*(end-start))
		for _, card := range g.cards[start:end] {
			if card == nil {
				continue
			}
			if len(cells) > 0 {
				cells = append(cells, spacer)
			}
			cells = append(cells, renderChild(card, ctx))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return g.ComputeStyle(ctx.Theme).Render(content)
}
