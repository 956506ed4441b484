package components

import (
	"github.com/charmbracelet/lipgloss"
)

// EmptyState fills a region that has no data to show: an icon, a message,
// and an optional hint describing the action that would populate it.
type EmptyState struct {
	BaseComponent
	icon    Icon
	message string
	hint    string
	width   int
}

// NewEmptyState creates an empty state with the given message.
func NewEmptyState(message string) *EmptyState {
	return &EmptyState{
		BaseComponent: NewBaseComponent(),
		message:       message,
		width:         40,
	}
}

// WithIcon sets the optional icon capability.
func (e *EmptyState) WithIcon(icon Icon) *EmptyState {
	e.icon = icon
	return e
}

// WithHint sets the optional action hint shown below the message.
func (e *EmptyState) WithHint(hint string) *EmptyState {
	e.hint = hint
	return e
}

// WithWidth sets the block width.
func (e *EmptyState) WithWidth(width int) *EmptyState {
	if width > 0 {
		e.width = width
	}
	return e
}

// View renders the empty state with the shared theme.
func (e *EmptyState) View() string {
	return e.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the empty state with the given context.
func (e *EmptyState) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	var lines []string
	if e.icon != nil {
		if rendered := e.icon.Render(2, theme.Palette.Light.Muted); rendered != "" {
			lines = append(lines, rendered)
		}
	}
	lines = append(lines, theme.Typography.Muted.Render(e.message))
	if e.hint != "" {
		lines = append(lines, theme.Typography.Subtitle.Render(e.hint))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return e.ComputeStyle(theme).
		Width(e.width).
		Align(lipgloss.Center).
		Padding(1, 0).
		Render(content)
}
