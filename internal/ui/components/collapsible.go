package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opsdeck/opsdeck/internal/ui"
)

const (
	indicatorClosed = "▸"
	indicatorOpen   = "▾"
)

// CollapsiblePanel is a two-state panel toggled exclusively through its
// header. The open state is seeded from a property and thereafter owned by
// the panel; content renders only while open, and the header indicator
// reflects the current state.
type CollapsiblePanel struct {
	title   string
	content ui.Renderable
	open    bool
	focused bool
	theme   Theme
}

// NewCollapsiblePanel creates a panel, closed by default.
func NewCollapsiblePanel(title string, content ui.Renderable) CollapsiblePanel {
	return CollapsiblePanel{
		title:   title,
		content: content,
		theme:   SharedTheme(),
	}
}

// WithOpen seeds the initial open state.
func (p CollapsiblePanel) WithOpen(open bool) CollapsiblePanel {
	p.open = open
	return p
}

// WithTheme sets the theme used for rendering.
func (p CollapsiblePanel) WithTheme(theme Theme) CollapsiblePanel {
	p.theme = theme
	return p
}

// Focus directs header interaction events to this panel.
func (p CollapsiblePanel) Focus() CollapsiblePanel {
	p.focused = true
	return p
}

// Blur stops the panel from receiving interaction events.
func (p CollapsiblePanel) Blur() CollapsiblePanel {
	p.focused = false
	return p
}

// IsOpen reports the current state.
func (p CollapsiblePanel) IsOpen() bool {
	return p.open
}

// Toggle flips the state, as a direct header interaction would.
func (p CollapsiblePanel) Toggle() CollapsiblePanel {
	p.open = !p.open
	return p
}

// Update flips the state on header interaction: enter or space while
// focused, or a mouse press on the header line.
func (p CollapsiblePanel) Update(msg tea.Msg) (CollapsiblePanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch msg.String() {
		case "enter", " ":
			return p.Toggle(), nil
		}
	case tea.MouseMsg:
		// The header is always the first rendered line.
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			return p.Toggle(), nil
		}
	}
	return p, nil
}

// View renders the header and, while open, the content below it.
func (p CollapsiblePanel) View() string {
	theme := p.theme

	indicator := indicatorClosed
	if p.open {
		indicator = indicatorOpen
	}

	headerStyle := theme.Typography.Label
	if p.focused {
		headerStyle = headerStyle.Foreground(theme.Palette.Primary.Base)
	}
	header := headerStyle.Render(indicator + " " + p.title)

	if !p.open {
		return header
	}

	var content string
	if p.content != nil {
		content = p.content.View()
	}
	body := lipgloss.NewStyle().PaddingLeft(2).Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}
