package components

import (
	"github.com/charmbracelet/lipgloss"
)

const processingLabel = "Processing…"

// FormButtons is the cancel/submit pair at the bottom of a form. The cancel
// control is disabled while the form is loading; the submit control is
// disabled while loading or explicitly disabled, and its label switches to a
// processing indicator while loading.
type FormButtons struct {
	BaseComponent
	onCancel      func()
	onSubmit      func()
	cancelLabel   string
	submitLabel   string
	submitVariant string
	loading       bool
	disabled      bool
	size          SizeVariant
}

// NewFormButtons creates the pair with the required callbacks.
func NewFormButtons(onCancel, onSubmit func()) *FormButtons {
	return &FormButtons{
		BaseComponent: NewBaseComponent(),
		onCancel:      onCancel,
		onSubmit:      onSubmit,
		cancelLabel:   "Cancel",
		submitLabel:   "Submit",
		submitVariant: "primary",
		size:          SizeMD,
	}
}

// WithLabels overrides the control labels.
func (f *FormButtons) WithLabels(cancel, submit string) *FormButtons {
	if cancel != "" {
		f.cancelLabel = cancel
	}
	if submit != "" {
		f.submitLabel = submit
	}
	return f
}

// WithSubmitVariant sets the submit colour category, resolved through the
// shared variant lookup; unknown categories resolve to primary.
func (f *FormButtons) WithSubmitVariant(variant string) *FormButtons {
	f.submitVariant = variant
	return f
}

// WithLoading sets the loading state.
func (f *FormButtons) WithLoading(loading bool) *FormButtons {
	f.loading = loading
	return f
}

// WithDisabled sets the submit disabled state.
func (f *FormButtons) WithDisabled(disabled bool) *FormButtons {
	f.disabled = disabled
	return f
}

// WithSize sets the size variant.
func (f *FormButtons) WithSize(size SizeVariant) *FormButtons {
	f.size = size
	return f
}

// CanCancel reports whether the cancel control is currently interactive.
func (f *FormButtons) CanCancel() bool {
	return !f.loading
}

// CanSubmit reports whether the submit control is currently interactive.
func (f *FormButtons) CanSubmit() bool {
	return !f.loading && !f.disabled
}

// Cancel fires the cancel callback when the control is interactive.
// It reports whether the callback fired.
func (f *FormButtons) Cancel() bool {
	if !f.CanCancel() || f.onCancel == nil {
		return false
	}
	f.onCancel()
	return true
}

// Submit fires the submit callback when the control is interactive.
// It reports whether the callback fired.
func (f *FormButtons) Submit() bool {
	if !f.CanSubmit() || f.onSubmit == nil {
		return false
	}
	f.onSubmit()
	return true
}

// SubmitLabel returns the submit control's current visible text.
func (f *FormButtons) SubmitLabel() string {
	if f.loading {
		return processingLabel
	}
	return f.submitLabel
}

// View renders the pair with the shared theme.
func (f *FormButtons) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the pair with the given context.
func (f *FormButtons) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	attrs := ButtonSize(f.size)

	cancel := f.renderControl(theme, attrs, f.cancelLabel, PaletteLight, f.CanCancel())
	submit := f.renderControl(theme, attrs, f.SubmitLabel(), SlotForName(f.submitVariant), f.CanSubmit())

	return f.ComputeStyle(theme).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, cancel, " ", submit),
	)
}

func (f *FormButtons) renderControl(theme Theme, attrs ButtonSizeAttrs, label string, slot PaletteSlot, enabled bool) string {
	cs := slot(theme.Palette)
	style := lipgloss.NewStyle().
		Background(cs.Base).
		Foreground(cs.OnBase).
		Padding(attrs.PaddingY, attrs.PaddingX).
		Bold(true)
	if !enabled {
		style = style.Faint(true).Bold(false)
	}
	return style.Render(label)
}
