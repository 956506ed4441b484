package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RangePicker is a paired start/end input used for date and time ranges.
// Both halves are controlled; tab moves focus between them.
type RangePicker struct {
	label    string
	start    textinput.Model
	end      textinput.Model
	onChange func(start, end string)
	active   int
	focused  bool
	theme    Theme
}

func newRangePicker(label, placeholder string) RangePicker {
	start := textinput.New()
	start.Placeholder = placeholder
	start.CharLimit = len(placeholder)
	end := textinput.New()
	end.Placeholder = placeholder
	end.CharLimit = len(placeholder)

	return RangePicker{
		label: label,
		start: start,
		end:   end,
		theme: SharedTheme(),
	}
}

// NewDateRangePicker creates a picker for a pair of calendar dates.
func NewDateRangePicker(label string) RangePicker {
	return newRangePicker(label, "YYYY-MM-DD")
}

// NewTimeRangePicker creates a picker for a pair of clock times.
func NewTimeRangePicker(label string) RangePicker {
	return newRangePicker(label, "HH:MM")
}

// WithValues sets the controlled start and end values.
func (p RangePicker) WithValues(start, end string) RangePicker {
	p.start.SetValue(start)
	p.end.SetValue(end)
	return p
}

// WithOnChange sets the change callback, invoked with both halves whenever
// either changes.
func (p RangePicker) WithOnChange(fn func(start, end string)) RangePicker {
	p.onChange = fn
	return p
}

// WithTheme sets the theme used for rendering.
func (p RangePicker) WithTheme(theme Theme) RangePicker {
	p.theme = theme
	return p
}

// Values returns the current start and end values.
func (p RangePicker) Values() (string, string) {
	return p.start.Value(), p.end.Value()
}

// Focus gives the picker input focus on its start half.
func (p RangePicker) Focus() (RangePicker, tea.Cmd) {
	p.focused = true
	p.active = 0
	p.end.Blur()
	return p, p.start.Focus()
}

// Blur removes input focus from both halves.
func (p RangePicker) Blur() RangePicker {
	p.focused = false
	p.start.Blur()
	p.end.Blur()
	return p
}

// Update routes interaction events to the active half.
func (p RangePicker) Update(msg tea.Msg) (RangePicker, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "tab" {
		if p.active == 0 {
			p.active = 1
			p.start.Blur()
			return p, p.end.Focus()
		}
		p.active = 0
		p.end.Blur()
		return p, p.start.Focus()
	}

	beforeStart, beforeEnd := p.start.Value(), p.end.Value()

	var cmd tea.Cmd
	if p.active == 0 {
		p.start, cmd = p.start.Update(msg)
	} else {
		p.end, cmd = p.end.Update(msg)
	}

	if p.onChange != nil &&
		(p.start.Value() != beforeStart || p.end.Value() != beforeEnd) {
		p.onChange(p.start.Value(), p.end.Value())
	}

	return p, cmd
}

// View renders the picker.
func (p RangePicker) View() string {
	theme := p.theme

	label := theme.Typography.Label.Render(p.label)
	arrow := theme.Typography.Muted.Render(" → ")

	startStyle := theme.InputStyle(InputStateDefault)
	endStyle := theme.InputStyle(InputStateDefault)
	if p.focused && p.active == 0 {
		startStyle = theme.InputStyle(InputStateFocus)
	}
	if p.focused && p.active == 1 {
		endStyle = theme.InputStyle(InputStateFocus)
	}

	pair := lipgloss.JoinHorizontal(
		lipgloss.Center,
		startStyle.Render(p.start.View()),
		arrow,
		endStyle.Render(p.end.View()),
	)

	return lipgloss.JoinVertical(lipgloss.Left, label, pair)
}
