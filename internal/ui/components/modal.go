package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opsdeck/opsdeck/internal/ui"
)

// Modal is an overlay dialog. It renders nothing while closed; while open it
// renders a full-viewport overlay with a centered content panel. It holds no
// timers or async state: it closes only through onClose, triggered by the
// header close affordance, the escape key, or — when the gate allows — a
// click on the overlay outside the content panel.
type Modal struct {
	title               string
	content             ui.Renderable
	open                bool
	size                SizeVariant
	widthOverride       int
	closeOnOverlayClick bool
	onClose             func()

	viewportWidth  int
	viewportHeight int
	theme          Theme
}

// NewModal creates a closed modal with the given title.
func NewModal(title string, content ui.Renderable) Modal {
	return Modal{
		title:               title,
		content:             content,
		size:                SizeMD,
		closeOnOverlayClick: true,
		theme:               SharedTheme(),
	}
}

// WithOpen sets the open state.
func (m Modal) WithOpen(open bool) Modal {
	m.open = open
	return m
}

// WithSize sets the size variant resolved through the modal width table.
func (m Modal) WithSize(size SizeVariant) Modal {
	m.size = size
	return m
}

// WithWidth sets an explicit width, taking precedence over the size table.
func (m Modal) WithWidth(width int) Modal {
	m.widthOverride = width
	return m
}

// WithCloseOnOverlayClick sets the overlay-click gate.
func (m Modal) WithCloseOnOverlayClick(enabled bool) Modal {
	m.closeOnOverlayClick = enabled
	return m
}

// WithOnClose sets the close callback.
func (m Modal) WithOnClose(fn func()) Modal {
	m.onClose = fn
	return m
}

// WithTheme sets the theme used for rendering.
func (m Modal) WithTheme(theme Theme) Modal {
	m.theme = theme
	return m
}

// IsOpen reports whether the modal is open.
func (m Modal) IsOpen() bool {
	return m.open
}

// Width resolves the content-panel width: the explicit override when set,
// otherwise the size table, always capped against the viewport.
func (m Modal) Width() int {
	width := ModalWidth(m.size)
	if m.widthOverride > 0 {
		width = m.widthOverride
	}
	if m.viewportWidth > 0 && width > m.viewportWidth-4 {
		width = m.viewportWidth - 4
	}
	if width < 1 {
		width = 1
	}
	return width
}

// Update tracks the viewport and applies the overlay-click gate.
func (m Modal) Update(msg tea.Msg) (Modal, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.open && msg.String() == "esc" {
			m.requestClose()
		}
		return m, nil
	case tea.MouseMsg:
		if m.open && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.handleClick(msg.X, msg.Y)
		}
		return m, nil
	}
	return m, nil
}

// handleClick applies the overlay-click gate: a press whose target lies
// inside the content panel never closes the modal, even though the event
// originated within the overlay's bounds.
func (m Modal) handleClick(x, y int) {
	if m.contentRect().contains(x, y) {
		return
	}
	if m.closeOnOverlayClick {
		m.requestClose()
	}
}

// CloseAffordance invokes onClose regardless of the overlay-click gate, as
// the header close control does.
func (m Modal) CloseAffordance() {
	if m.open {
		m.requestClose()
	}
}

func (m Modal) requestClose() {
	if m.onClose != nil {
		m.onClose()
	}
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// contentRect computes the centered panel bounds within the viewport.
func (m Modal) contentRect() rect {
	panel := m.renderPanel()
	w := lipgloss.Width(panel)
	h := lipgloss.Height(panel)

	x := (m.viewportWidth - w) / 2
	y := (m.viewportHeight - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return rect{x: x, y: y, w: w, h: h}
}

// View renders the overlay and panel, or nothing while closed.
func (m Modal) View() string {
	if !m.open {
		return ""
	}

	panel := m.renderPanel()
	if m.viewportWidth <= 0 || m.viewportHeight <= 0 {
		return panel
	}

	return lipgloss.Place(
		m.viewportWidth, m.viewportHeight,
		lipgloss.Center, lipgloss.Center,
		panel,
	)
}

func (m Modal) renderPanel() string {
	theme := m.theme
	width := m.Width()

	title := theme.Typography.Title.Render(m.title)
	closeMark := lipgloss.NewStyle().
		Foreground(theme.Palette.Light.Muted).
		Bold(true).
		Render("×")

	gap := width - lipgloss.Width(title) - lipgloss.Width(closeMark) - 2
	if gap < 1 {
		gap = 1
	}
	header := title + lipgloss.NewStyle().Width(gap).Render("") + closeMark

	var body string
	if m.content != nil {
		body = m.content.View()
	}

	inner := lipgloss.JoinVertical(lipgloss.Left, header, "", body)

	maxHeight := 0
	if m.viewportHeight > 4 {
		maxHeight = m.viewportHeight - 4
	}

	panel := lipgloss.NewStyle().
		BorderStyle(theme.Borders.Rounded).
		BorderForeground(theme.Palette.Primary.Base).
		Padding(0, 1).
		Width(width)
	if maxHeight > 0 {
		panel = panel.MaxHeight(maxHeight)
	}

	return panel.Render(inner)
}
