package components

import (
	"github.com/charmbracelet/lipgloss"
)

// PageHeader is the title block at the top of a dashboard page: a title,
// an optional subtitle, and an optional right-aligned action hint.
type PageHeader struct {
	BaseComponent
	title    string
	subtitle string
	actions  string
	width    int
}

// NewPageHeader creates a header with the given title.
func NewPageHeader(title string) *PageHeader {
	return &PageHeader{BaseComponent: NewBaseComponent(), title: title}
}

// WithSubtitle adds a subtitle below the title.
func (h *PageHeader) WithSubtitle(subtitle string) *PageHeader {
	h.subtitle = subtitle
	return h
}

// WithActions adds right-aligned action text on the title line.
func (h *PageHeader) WithActions(actions string) *PageHeader {
	h.actions = actions
	return h
}

// WithWidth sets the header width, enabling action alignment.
func (h *PageHeader) WithWidth(width int) *PageHeader {
	h.width = width
	return h
}

// WithAppliers applies theme-based style modifiers.
func (h *PageHeader) WithAppliers(appliers ...StyleFunc) *PageHeader {
	h.AddAppliers(appliers...)
	return h
}

// View renders the header with the shared theme.
func (h *PageHeader) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given context.
func (h *PageHeader) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	title := theme.Typography.Title.Render(h.title)

	line := title
	if h.actions != "" {
		actions := theme.Typography.Muted.Render(h.actions)
		width := h.width
		if width <= 0 {
			width = ctx.ParentWidth
		}
		if width > 0 {
			gap := width - lipgloss.Width(title) - lipgloss.Width(actions)
			if gap < 1 {
				gap = 1
			}
			line = title + lipgloss.NewStyle().Width(gap).Render("") + actions
		} else {
			line = title + "  " + actions
		}
	}

	if h.subtitle == "" {
		return h.ComputeStyle(theme).Render(line)
	}

	subtitle := theme.Typography.Subtitle.Render(h.subtitle)
	return h.ComputeStyle(theme).Render(
		lipgloss.JoinVertical(lipgloss.Left, line, subtitle),
	)
}
