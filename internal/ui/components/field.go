package components

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FieldKind discriminates the three mutually exclusive input shapes of a
// form field.
type FieldKind int

const (
	FieldSingleLine FieldKind = iota
	FieldMultiLine
	FieldChoice
)

// Option is one selectable entry of a choice field.
type Option struct {
	Value string
	Label string
}

// Field is a controlled form control: the caller owns the value and receives
// every change through the onChange callback; the field holds no independent
// value state beyond what the caller last set. Exactly one input shape is
// rendered, selected by the field kind.
type Field struct {
	id          string
	label       string
	kind        FieldKind
	placeholder string
	errorText   string
	required    bool
	onChange    func(string)

	input   textinput.Model
	area    textarea.Model
	options []Option
	cursor  int

	value   string
	focused bool
	theme   Theme
}

// NewField creates a field of the given kind. When the caller supplies no
// identifier via WithID, a collision-resistant one is generated.
func NewField(label string, kind FieldKind) Field {
	f := Field{
		id:    nextID("field"),
		label: label,
		kind:  kind,
		theme: SharedTheme(),
	}

	switch kind {
	case FieldMultiLine:
		area := textarea.New()
		area.SetHeight(3)
		area.ShowLineNumbers = false
		f.area = area
	case FieldChoice:
		// Options arrive via WithOptions.
	default:
		f.input = textinput.New()
	}

	return f
}

// WithID overrides the generated identifier.
func (f Field) WithID(id string) Field {
	if id != "" {
		f.id = id
	}
	return f
}

// WithValue sets the controlled value.
func (f Field) WithValue(value string) Field {
	f.value = value
	switch f.kind {
	case FieldMultiLine:
		f.area.SetValue(value)
	case FieldChoice:
		for i, opt := range f.options {
			if opt.Value == value {
				f.cursor = i
				break
			}
		}
	default:
		f.input.SetValue(value)
	}
	return f
}

// WithOnChange sets the required change callback.
func (f Field) WithOnChange(fn func(string)) Field {
	f.onChange = fn
	return f
}

// WithPlaceholder sets the placeholder text.
func (f Field) WithPlaceholder(placeholder string) Field {
	f.placeholder = placeholder
	f.input.Placeholder = placeholder
	f.area.Placeholder = placeholder
	return f
}

// WithOptions sets the choice options. Only meaningful for FieldChoice.
func (f Field) WithOptions(options []Option) Field {
	f.options = options
	if f.cursor >= len(options) {
		f.cursor = 0
	}
	return f
}

// WithRequired marks the field as required. The marker is visual only;
// enforcement belongs to the host form.
func (f Field) WithRequired(required bool) Field {
	f.required = required
	return f
}

// WithError attaches an error message. A non-empty message switches the
// control into its error presentation.
func (f Field) WithError(message string) Field {
	f.errorText = message
	return f
}

// WithTheme sets the theme used for rendering.
func (f Field) WithTheme(theme Theme) Field {
	f.theme = theme
	return f
}

// ID returns the identifier linking the label to the control.
func (f Field) ID() string {
	return f.id
}

// Value returns the current controlled value.
func (f Field) Value() string {
	return f.value
}

// Focus gives the field input focus.
func (f Field) Focus() (Field, tea.Cmd) {
	f.focused = true
	switch f.kind {
	case FieldMultiLine:
		return f, f.area.Focus()
	case FieldChoice:
		return f, nil
	default:
		return f, f.input.Focus()
	}
}

// Blur removes input focus.
func (f Field) Blur() Field {
	f.focused = false
	f.input.Blur()
	f.area.Blur()
	return f
}

// Update routes interaction events to the active input shape and reports
// value changes to the caller through onChange.
func (f Field) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	before := f.value

	switch f.kind {
	case FieldMultiLine:
		f.area, cmd = f.area.Update(msg)
		f.value = f.area.Value()
	case FieldChoice:
		f.updateChoice(msg)
	default:
		f.input, cmd = f.input.Update(msg)
		f.value = f.input.Value()
	}

	if f.value != before && f.onChange != nil {
		f.onChange(f.value)
	}

	return f, cmd
}

func (f *Field) updateChoice(msg tea.Msg) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(f.options) == 0 {
		return
	}
	switch key.String() {
	case "up", "k":
		if f.cursor > 0 {
			f.cursor--
		}
	case "down", "j":
		if f.cursor < len(f.options)-1 {
			f.cursor++
		}
	case "enter", " ":
		f.value = f.options[f.cursor].Value
	}
}

// View renders the field: label, the active input shape, and the error
// message when present.
func (f Field) View() string {
	theme := f.theme

	label := theme.Typography.Label.Render(f.label)
	if f.required {
		marker := lipgloss.NewStyle().
			Foreground(theme.Palette.Danger.Base).
			Render(" *")
		label += marker
	}

	var control string
	switch f.kind {
	case FieldMultiLine:
		control = f.controlStyle(theme).Render(f.area.View())
	case FieldChoice:
		control = f.controlStyle(theme).Render(f.renderChoice(theme))
	default:
		control = f.controlStyle(theme).Render(f.input.View())
	}

	lines := []string{label, control}
	if f.errorText != "" {
		errLine := lipgloss.NewStyle().
			Foreground(theme.Palette.Danger.Base).
			Render("✗ " + f.errorText)
		lines = append(lines, errLine)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (f Field) controlStyle(theme Theme) lipgloss.Style {
	switch {
	case f.errorText != "":
		return theme.InputStyle(InputStateError)
	case f.focused:
		return theme.InputStyle(InputStateFocus)
	default:
		return theme.InputStyle(InputStateDefault)
	}
}

func (f Field) renderChoice(theme Theme) string {
	if len(f.options) == 0 {
		return theme.Typography.Muted.Render(f.placeholder)
	}

	lines := make([]string, 0, len(f.options))
	for i, opt := range f.options {
		marker := "  "
		style := theme.Typography.Body
		if i == f.cursor {
			marker = "› "
			style = theme.Typography.Emphasis
		}
		line := marker + opt.Label
		if opt.Value == f.value {
			line += " ✓"
		}
		lines = append(lines, style.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
