package components

import (
	"github.com/charmbracelet/lipgloss"
)

// TrendDirection marks which way a stat trend points.
type TrendDirection int

const (
	TrendUp TrendDirection = iota
	TrendDown
	TrendFlat
)

// Trend is the optional delta indicator on a stat card.
type Trend struct {
	Direction TrendDirection
	Label     string
}

// StatCard displays a single dashboard metric: a title, a value, and
// optional subtitle, trend, and icon. Optional regions that are absent are
// simply omitted.
type StatCard struct {
	BaseComponent
	title    string
	value    string
	subtitle string
	trend    *Trend
	icon     Icon
	width    int
}

// NewStatCard creates a stat card with a title and value.
func NewStatCard(title, value string) *StatCard {
	return &StatCard{
		BaseComponent: NewBaseComponent(),
		title:         title,
		value:         value,
		width:         20,
	}
}

// WithSubtitle sets the optional subtitle line.
func (s *StatCard) WithSubtitle(subtitle string) *StatCard {
	s.subtitle = subtitle
	return s
}

// WithTrend sets the optional trend indicator.
func (s *StatCard) WithTrend(trend Trend) *StatCard {
	s.trend = &trend
	return s
}

// WithIcon sets the optional icon capability.
func (s *StatCard) WithIcon(icon Icon) *StatCard {
	s.icon = icon
	return s
}

// WithWidth sets the card width.
func (s *StatCard) WithWidth(width int) *StatCard {
	if width > 0 {
		s.width = width
	}
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *StatCard) WithAppliers(appliers ...StyleFunc) *StatCard {
	s.AddAppliers(appliers...)
	return s
}

// View renders the card with the shared theme.
func (s *StatCard) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card with the given context.
func (s *StatCard) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	titleLine := theme.Typography.Muted.Render(s.title)
	if s.icon != nil {
		icon := s.icon.Render(1, theme.Palette.Info.Base)
		if icon != "" {
			titleLine = icon + " " + titleLine
		}
	}

	lines := []string{
		titleLine,
		theme.Typography.Title.Render(s.value),
	}

	if s.subtitle != "" {
		lines = append(lines, theme.Typography.Subtitle.Render(s.subtitle))
	}

	if s.trend != nil {
		lines = append(lines, s.renderTrend(theme))
	}

	card := s.ComputeStyle(theme).
		Border(theme.Borders.Rounded).
		Padding(0, 1).
		Width(s.width)

	return card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (s *StatCard) renderTrend(theme Theme) string {
	var arrow string
	var slot PaletteSlot
	switch s.trend.Direction {
	case TrendUp:
		arrow = "▲"
		slot = PaletteSuccess
	case TrendDown:
		arrow = "▼"
		slot = PaletteDanger
	default:
		arrow = "■"
		slot = PaletteLight
	}

	style := lipgloss.NewStyle().Foreground(slot(theme.Palette).Base)
	label := s.trend.Label
	if label == "" {
		return style.Render(arrow)
	}
	return style.Render(arrow + " " + label)
}
