package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadingIndicator wraps the bubbles spinner with the shared size lookup.
// It is the only display primitive that animates, driven by spinner tick
// messages from the host program.
type LoadingIndicator struct {
	spinner spinner.Model
	label   string
	size    SizeVariant
	theme   Theme
}

// NewLoadingIndicator creates an indicator with the given label.
func NewLoadingIndicator(label string) LoadingIndicator {
	theme := SharedTheme()
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base)
	return LoadingIndicator{
		spinner: s,
		label:   label,
		size:    SizeMD,
		theme:   theme,
	}
}

// WithSize sets the indicator size variant.
func (l LoadingIndicator) WithSize(size SizeVariant) LoadingIndicator {
	l.size = size
	return l
}

// WithTheme sets the theme used for rendering.
func (l LoadingIndicator) WithTheme(theme Theme) LoadingIndicator {
	l.theme = theme
	l.spinner.Style = lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base)
	return l
}

// Tick returns the command that starts the spinner animation.
func (l LoadingIndicator) Tick() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on tick messages.
func (l LoadingIndicator) Update(msg tea.Msg) (LoadingIndicator, tea.Cmd) {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return l, cmd
}

// View renders the indicator.
func (l LoadingIndicator) View() string {
	attrs := LoadingSize(l.size)

	out := l.spinner.View()
	if attrs.Label && l.label != "" {
		out += " " + l.theme.Typography.Muted.Render(l.label)
	}
	if attrs.PaddingX > 0 {
		out = lipgloss.NewStyle().Padding(0, attrs.PaddingX).Render(out)
	}
	return out
}
